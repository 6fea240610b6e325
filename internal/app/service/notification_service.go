package service

import (
	"context"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type NotificationService struct {
	store ports.NotificationRepository
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(store ports.NotificationRepository) *NotificationService {
	return &NotificationService{store: store}
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID uint64, unreadOnly bool) ([]domain.Notification, error) {
	return s.store.ListNotifications(ctx, userID, unreadOnly)
}

func (s *NotificationService) MarkNotificationRead(ctx context.Context, userID, id uint64) error {
	return s.store.MarkNotificationRead(ctx, userID, id)
}
