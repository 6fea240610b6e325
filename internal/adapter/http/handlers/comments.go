package handlers

import (
	"errors"
	"net/http"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *TaskHandler) ListComments(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.taskService.ListComments(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgInternal, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

func (h *TaskHandler) AddComment(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidComment)
		return
	}

	comment, err := h.taskService.AddComment(c.Request.Context(), domain.CreateCommentInput{
		TaskID:   taskID,
		AuthorID: middleware.GetActorID(c),
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondBadRequest(c, apierrors.MsgInvalidComment)
			return
		}
		respondError(c, err, apierrors.MsgInternal, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}
