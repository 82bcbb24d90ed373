// Package job provides background job processing using Asynq.
//
// Category writes enqueue a "category:changed" task; the worker consumes
// it and writes an audit log line. Asynq stores tasks in Redis, so the
// service only runs jobs when a Redis address is configured.
package job

import (
	"fmt"
	"strings"

	"github.com/deppfellow/expense-categories/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// QueueDefault is the only queue: every task this service enqueues goes there.
const QueueDefault = "default"

// queueWeights maps each served queue to its worker priority.
var queueWeights = map[string]int{
	QueueDefault: 1,
}

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger
}

// NewJobService creates a JobService on the Redis instance from cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues:      queueWeights,
			Logger:      newAsynqLogger(logger),
			LogLevel:    asynq.WarnLevel,
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the workers. It does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskCategoryChanged, j.handleCategoryChangedTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop waits for in-flight tasks and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("failed to close job client")
	}
}

// asynqLogger routes Asynq's internal logging through zerolog.
type asynqLogger struct {
	logger zerolog.Logger
}

func newAsynqLogger(logger *zerolog.Logger) *asynqLogger {
	return &asynqLogger{logger: logger.With().Str("component", "asynq").Logger()}
}

func (l *asynqLogger) Debug(args ...interface{}) { l.logger.Debug().Msg(sprint(args)) }
func (l *asynqLogger) Info(args ...interface{})  { l.logger.Info().Msg(sprint(args)) }
func (l *asynqLogger) Warn(args ...interface{})  { l.logger.Warn().Msg(sprint(args)) }
func (l *asynqLogger) Error(args ...interface{}) { l.logger.Error().Msg(sprint(args)) }
func (l *asynqLogger) Fatal(args ...interface{}) { l.logger.Fatal().Msg(sprint(args)) }

func sprint(args []interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
