package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"studentms/internal/container"
	handlers "studentms/internal/interface/http"
	"studentms/internal/interface/middleware"
)

// AuthModule wires the public login route.
// Public: POST /api/auth/login (rate-limited per IP)
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath()) // 10 req/min per IP

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
