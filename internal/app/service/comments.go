package service

import (
	"context"
	"fmt"
	"strings"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

// AddComment stores a comment or a reply and records it in the task history.
// Both parties of the task, other than the author, are notified.
func (s *TaskService) AddComment(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return domain.Comment{}, fmt.Errorf("%w: comment content is required", domain.ErrInvalidInput)
	}

	var created domain.Comment
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, store ports.Store) error {
		task, err := store.GetTask(ctx, input.TaskID)
		if err != nil {
			return err
		}
		author, err := store.GetUser(ctx, input.AuthorID)
		if err != nil {
			return err
		}

		if input.ParentID != nil {
			parent, err := store.GetComment(ctx, *input.ParentID)
			if err != nil {
				return err
			}
			if parent.TaskID != task.ID {
				return fmt.Errorf("%w: parent comment %d belongs to another task", domain.ErrInvalidInput, parent.ID)
			}
		}

		now := s.now()
		commentID, err := store.CreateComment(ctx, domain.Comment{
			TaskID:    task.ID,
			Author:    author,
			Content:   content,
			ParentID:  input.ParentID,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		details := domain.HistoryDetails{"comment_id": commentID}
		if input.ParentID != nil {
			details["parent_id"] = *input.ParentID
		}
		if err := s.record(ctx, store, task.ID, author, domain.HistoryActionComment, details, now); err != nil {
			return err
		}

		for _, userID := range commentRecipients(task, author.ID) {
			if err := s.notify(ctx, store, task, userID, author, notifyTaskCommented, now); err != nil {
				return err
			}
		}

		created, err = store.GetComment(ctx, commentID)
		return err
	})
	if err != nil {
		return domain.Comment{}, err
	}

	return created, nil
}

// ListComments returns the comment threads of a task, oldest first.
func (s *TaskService) ListComments(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	if _, err := s.store.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	comments, err := s.store.ListComments(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return domain.BuildCommentThreads(comments), nil
}

func commentRecipients(task domain.Task, authorID uint64) []uint64 {
	var recipients []uint64
	if task.AssignedTo.ID != authorID {
		recipients = append(recipients, task.AssignedTo.ID)
	}
	if task.AssignedBy.ID != authorID && task.AssignedBy.ID != task.AssignedTo.ID {
		recipients = append(recipients, task.AssignedBy.ID)
	}
	return recipients
}
