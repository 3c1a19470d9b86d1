package token

import (
	"errors"
	"testing"
	"time"

	autherrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	raw, exp, err := m.Issue("user-1", "engineer")
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(raw)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "engineer", claims.Role)
}

func TestManager_Parse_Failures(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	t.Run("expired", func(t *testing.T) {
		past := NewManager("test-secret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		raw, _, err := past.Issue("user-1", "engineer")
		assert.NoError(t, err)

		_, err = m.Parse(raw)
		assert.True(t, errors.Is(err, autherrors.ErrTokenExpired))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour)
		raw, _, _ := other.Issue("user-1", "engineer")

		_, err := m.Parse(raw)
		assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = m.Parse(raw)
		assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))
	})

	t.Run("missing user id", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: "engineer"}).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = m.Parse(raw)
		assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))
	})
}
