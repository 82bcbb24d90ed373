package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleCategoryChangedTask writes the audit line for one category write.
// Malformed payloads are not retried.
func (j *JobService) handleCategoryChangedTask(ctx context.Context, t *asynq.Task) error {
	var p CategoryChangedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal category change payload: %v: %w", err, asynq.SkipRetry)
	}

	switch p.Action {
	case ActionCreated, ActionUpdated, ActionDeleted:
	default:
		return fmt.Errorf("unknown category change action %q: %w", p.Action, asynq.SkipRetry)
	}

	event := j.logger.Info().
		Str("type", TaskCategoryChanged).
		Str("action", p.Action).
		Int64("category_id", p.ID).
		Str("name", p.Name).
		Time("occurred_at", p.OccurredAt)

	if p.UserID != nil {
		event = event.Int64("user_id", *p.UserID)
	}

	event.Msg("category changed")

	return nil
}
