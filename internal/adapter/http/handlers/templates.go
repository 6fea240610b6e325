package handlers

import (
	"net/http"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *TaskHandler) ListTemplates(c *gin.Context) {
	templates, err := h.taskService.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(templates, h.now()))
}

func (h *TaskHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTemplateInput(req, middleware.GetActorID(c))
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	template, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(template, h.now()))
}

func (h *TaskHandler) InstantiateTemplate(c *gin.Context) {
	templateID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.InstantiateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := validation.ParseDueDate(*req.DueDate)
		if err != nil {
			respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
			return
		}
		dueDate = &parsed
	}

	task, err := h.taskService.InstantiateTemplate(c.Request.Context(), templateID, req.AssignedTo, dueDate)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, zap.Uint64("template_id", templateID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.now()))
}
