package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)
	return w
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, http.StatusCreated, gin.H{"id": "u1"}, "Student added successfully.")
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Student added successfully.", body["message"])
	assert.NotContains(t, body, "count")
	assert.NotContains(t, body, "error")
}

func TestList(t *testing.T) {
	w := record(func(c *gin.Context) {
		List(c, 0, []string{"a", "b", "c"})
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["count"])
}

func TestList_Empty(t *testing.T) {
	w := record(func(c *gin.Context) {
		List(c, 0, []string{})
	})

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(0), body["count"])
}

func TestError(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "Task not found.", nil)
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Task not found.", body["message"])
	assert.NotContains(t, body, "data")
}
