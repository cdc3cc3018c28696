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

// StudentModule wires the student-only routes.
// Protected (student): GET /api/student/tasks, GET /api/student/tasks/:id,
// PATCH /api/student/tasks/:id/status
type StudentModule struct {
	Handler *handlers.StudentHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewStudentModule(h *handlers.StudentHandler, users repository.UserRepository, jwt *helpers.JWTManager) *StudentModule {
	return &StudentModule{Handler: h, Users: users, JWT: jwt}
}

func (m *StudentModule) Register(rg *gin.RouterGroup) {
	student := rg.Group("/student")
	student.Use(
		middleware.Auth(m.Users, m.JWT),
		middleware.RequireRole(entity.RoleStudent),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		student.GET("/tasks", m.Handler.MyTasks)
		student.GET("/tasks/:id", m.Handler.MyTask)
		student.PATCH("/tasks/:id/status", m.Handler.UpdateTaskStatus)
	}
}
