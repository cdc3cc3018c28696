package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, exp, err := m.Generate("user-1", "student")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "student", claims.Role)
}

func TestJWTManager_ParseFailures(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	t.Run("empty token", func(t *testing.T) {
		_, err := m.Parse("")
		assert.Error(t, err)
	})

	t.Run("structurally invalid token", func(t *testing.T) {
		_, err := m.Parse("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		token, _, err := other.Generate("user-1", "admin")
		assert.NoError(t, err)

		_, err = m.Parse(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTManager("secret", -time.Minute)
		token, _, err := expired.Generate("user-1", "admin")
		assert.NoError(t, err)

		_, err = m.Parse(token)
		assert.Error(t, err)
	})
}
