package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"studentms/internal/application"
	"studentms/internal/interface/middleware"
	"studentms/pkg/response"
	"studentms/pkg/validation"
)

type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

type addStudentRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department"`
	Password   string `json:"password" binding:"required,pwd"`
}

// AddStudent POST /api/admin/students
func (h *AdminHandler) AddStudent(c *gin.Context) {
	var req addStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation Error", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.AddStudent(c.Request.Context(), application.AddStudentInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Password:   req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "Email already in use.", nil)
			return
		}
		h.Logger.WithError(err).Error("add student failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while adding student.", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"department": u.Department,
		"role":       u.Role.String(),
	}, "Student added successfully.")
}

// ListStudents GET /api/admin/students
func (h *AdminHandler) ListStudents(c *gin.Context) {
	students, err := h.Svc.ListStudents(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list students failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while fetching students.", nil)
		return
	}
	response.List(c, http.StatusOK, toUserList(students))
}

// SearchStudents GET /api/admin/students/search?q=&size=
func (h *AdminHandler) SearchStudents(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.SearchStudents(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("student search failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while searching students.", nil)
		return
	}
	response.List(c, http.StatusOK, hits)
}

type assignTaskRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	AssignedTo  string    `json:"assignedTo" binding:"required,uuid"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
}

// AssignTask POST /api/admin/tasks
func (h *AdminHandler) AssignTask(c *gin.Context) {
	var req assignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation Error", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.AssignTask(c.Request.Context(), application.AssignTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		CreatedBy:   c.GetString(middleware.CtxUserIDKey),
	})
	if err != nil {
		if errors.Is(err, application.ErrStudentNotFound) {
			response.Error(c, http.StatusNotFound, "Student not found.", nil)
			return
		}
		h.Logger.WithError(err).Error("assign task failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while assigning task.", nil)
		return
	}

	response.Success(c, http.StatusCreated, toAdminTaskJSON(t), "Task assigned successfully.")
}

// ListTasks GET /api/admin/tasks
func (h *AdminHandler) ListTasks(c *gin.Context) {
	tasks, err := h.Svc.ListTasks(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list tasks failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while fetching tasks.", nil)
		return
	}
	response.List(c, http.StatusOK, toAdminTaskList(tasks))
}

// GetTask GET /api/admin/tasks/:id
func (h *AdminHandler) GetTask(c *gin.Context) {
	t, err := h.Svc.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "Task not found.", nil)
			return
		}
		h.Logger.WithError(err).Error("get task failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while fetching task.", nil)
		return
	}
	response.Success(c, http.StatusOK, toAdminTaskJSON(t), "")
}

// UploadAttachment POST /api/admin/tasks/:id/attachment
func (h *AdminHandler) UploadAttachment(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Validation Error", map[string]string{"file": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Could not read uploaded file.", nil)
		return
	}
	defer func() { _ = f.Close() }()

	t, err := h.Svc.AttachFile(c.Request.Context(), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "Task not found.", nil)
			return
		}
		h.Logger.WithError(err).Error("attachment upload failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while uploading attachment.", nil)
		return
	}

	response.Success(c, http.StatusOK, toTaskJSON(t), "Attachment uploaded successfully.")
}
