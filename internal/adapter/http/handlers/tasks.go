package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
	now         func() time.Time
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService, now: time.Now}
}

// SearchTasks lists non-template tasks matching the optional q, category,
// status and priority query parameters, newest first.
func (h *TaskHandler) SearchTasks(c *gin.Context) {
	filter, err := validation.BuildTaskFilter(
		c.Query("q"),
		c.Query("category"),
		c.Query("status"),
		c.Query("priority"),
	)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidSearchFilter)
		return
	}

	tasks, err := h.taskService.SearchTasks(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, h.now()))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgInternal, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, middleware.GetActorID(c))
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}
	var req dto.UpdateTaskRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, middleware.GetActorID(c), input)
	if err != nil {
		respondError(c, err, apierrors.MsgInternal, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) AcceptTask(c *gin.Context) {
	h.applyTransition(c, h.taskService.AcceptTask)
}

func (h *TaskHandler) RejectTask(c *gin.Context) {
	h.applyTransition(c, h.taskService.RejectTask)
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	h.applyTransition(c, h.taskService.CompleteTask)
}

type transitionFunc func(ctx context.Context, id, actorID uint64) (domain.Task, error)

func (h *TaskHandler) applyTransition(c *gin.Context, transition transitionFunc) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := transition(c.Request.Context(), taskID, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err, apierrors.MsgInternal, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) ListHistory(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	entries, err := h.taskService.ListHistory(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgInternal, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToHistoryItems(entries))
}

func (h *TaskHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.taskService.Dashboard(c.Request.Context(), middleware.GetActorID(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardResponse(dashboard, h.now()))
}
