package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"studentms/internal/application"
	"studentms/internal/domain/entity"
	"studentms/internal/interface/middleware"
	"studentms/pkg/response"
	"studentms/pkg/validation"
)

type StudentHandler struct {
	Svc    *application.StudentService
	Logger *logrus.Logger
}

func NewStudentHandler(svc *application.StudentService, logger *logrus.Logger) *StudentHandler {
	return &StudentHandler{Svc: svc, Logger: logger}
}

// MyTasks GET /api/student/tasks
func (h *StudentHandler) MyTasks(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	tasks, err := h.Svc.MyTasks(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("list own tasks failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while fetching tasks.", nil)
		return
	}
	response.List(c, http.StatusOK, toTaskList(tasks))
}

// MyTask GET /api/student/tasks/:id
func (h *StudentHandler) MyTask(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.MyTask(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "Task not found or not assigned to you.", nil)
			return
		}
		h.Logger.WithError(err).Error("get own task failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while fetching task.", nil)
		return
	}
	response.Success(c, http.StatusOK, toTaskJSON(t), "")
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTaskStatus PATCH /api/student/tasks/:id/status
func (h *StudentHandler) UpdateTaskStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation Error", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.CompleteTask(c.Request.Context(), uid, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrTaskNotFound):
			response.Error(c, http.StatusNotFound, "Task not found or not assigned to you.", nil)
		case errors.Is(err, entity.ErrStatusNotAllowed):
			response.Error(c, http.StatusBadRequest, "Students can only mark tasks as completed.", nil)
		case errors.Is(err, entity.ErrTaskOverdue):
			response.Error(c, http.StatusBadRequest, "Cannot mark an overdue task as completed.", nil)
		case errors.Is(err, entity.ErrTaskCompleted):
			response.Error(c, http.StatusBadRequest, "Task is already completed.", nil)
		default:
			h.Logger.WithError(err).Error("update task status failed")
			response.Error(c, http.StatusInternalServerError, "An error occurred while updating task status.", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, toTaskJSON(t), "Task status updated successfully.")
}
