package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/hibiken/asynq"
)

// TaskCategoryChanged is the task type for category writes.
const TaskCategoryChanged = "category:changed"

// Actions carried by CategoryChangedPayload.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CategoryChangedPayload is the JSON body of a category:changed task.
type CategoryChangedPayload struct {
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	UserID     *int64    `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewCategoryChangedTask builds the task for one write to category c.
func NewCategoryChangedTask(action string, c model.Category, occurredAt time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(CategoryChangedPayload{
		Action:     action,
		ID:         c.ID,
		Name:       c.Name,
		UserID:     c.UserID,
		OccurredAt: occurredAt.UTC(),
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TaskCategoryChanged, payload, categoryChangedOptions()...), nil
}

func categoryChangedOptions() []asynq.Option {
	return []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30 * time.Second),
	}
}

// PublishCategoryChanged enqueues a category:changed task.
func (j *JobService) PublishCategoryChanged(ctx context.Context, action string, c model.Category) error {
	task, err := NewCategoryChangedTask(action, c, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build %s task: %w", TaskCategoryChanged, err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", TaskCategoryChanged, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("action", action).
		Int64("category_id", c.ID).
		Msg("enqueued category change")

	return nil
}
