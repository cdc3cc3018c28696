package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"studentms/internal/container"
	"studentms/internal/domain/entity"
	"studentms/internal/domain/repository"
	handlers "studentms/internal/interface/http"
	"studentms/internal/interface/middleware"
	"studentms/pkg/helpers"
)

// AdminModule wires the admin-only routes behind the auth and role
// gates.
// Protected (admin): POST/GET /api/admin/students, GET /api/admin/students/search,
// POST/GET /api/admin/tasks, GET /api/admin/tasks/:id,
// POST /api/admin/tasks/:id/attachment
type AdminModule struct {
	Handler *handlers.AdminHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, users repository.UserRepository, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, Users: users, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(
		middleware.Auth(m.Users, m.JWT),
		middleware.RequireRole(entity.RoleAdmin),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		admin.POST("/students", m.Handler.AddStudent)
		admin.GET("/students", m.Handler.ListStudents)
		admin.GET("/students/search", m.Handler.SearchStudents)
		admin.POST("/tasks", m.Handler.AssignTask)
		admin.GET("/tasks", m.Handler.ListTasks)
		admin.GET("/tasks/:id", m.Handler.GetTask)
		admin.POST("/tasks/:id/attachment", m.Handler.UploadAttachment)
	}
}
