package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type signupPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func bindJSON(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var p signupPayload
	return c.ShouldBindJSON(&p)
}

func TestToDetails(t *testing.T) {
	Init()

	t.Run("field errors use json names", func(t *testing.T) {
		err := bindJSON(t, `{"name":"","email":"not-an-email","password":"abc"}`)
		assert.Error(t, err)

		details := ToDetails(err)
		assert.Equal(t, "is required", details["name"])
		assert.Equal(t, "must be a valid email", details["email"])
		assert.Equal(t, "must be at least 4 characters long", details["password"])
	})

	t.Run("wrong field type", func(t *testing.T) {
		err := bindJSON(t, `{"name":42,"email":"jane@example.com","password":"password123"}`)
		assert.Error(t, err)
		assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, ToDetails(nil))
	})

	t.Run("valid payload", func(t *testing.T) {
		err := bindJSON(t, `{"name":"Jane","email":"jane@example.com","password":"password123"}`)
		assert.NoError(t, err)
	})
}
