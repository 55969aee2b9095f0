package service

import (
	"context"

	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"
	"teamtrack-backend/internal/logger"
)

// authorize evaluates the engine's rule and logs denials.
func authorize(ctx context.Context, engine *authz.Engine, session authz.Session, action authz.Action, c models.Collection, target models.Entity) error {
	err := engine.Authorize(session, action, c, target)
	if err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"decision": authz.Describe(session, action, c),
		}).Info("permission denied")
	}
	return err
}

// dedupe returns ids without blanks or repeats, keeping first occurrences.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
