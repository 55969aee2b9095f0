package logger

import (
	"context"
	"testing"

	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContextTagsSession(t *testing.T) {
	ctx := authz.WithSession(context.Background(), authz.Session{UserID: "user_2", Name: "Sarah Miller", Role: models.RoleMember})
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")

	l := WithContext(ctx)

	assert.Equal(t, "user_2", l.Data["user"])
	assert.Equal(t, "member", l.Data["role"])
	assert.Equal(t, "req-1", l.Data["request_id"])
}

func TestWithContextWithoutSession(t *testing.T) {
	l := WithContext(context.Background())

	assert.Equal(t, "unknown", l.Data["user"])
	assert.NotContains(t, l.Data, "role")
	assert.NotContains(t, l.Data, "request_id")
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	Setup("DEBUG")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("chatty")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithFields(t *testing.T) {
	l := New().WithField("collection", "teams").WithFields(map[string]interface{}{"id": "team_1"})

	assert.Equal(t, "teams", l.Data["collection"])
	assert.Equal(t, "team_1", l.Data["id"])
}
