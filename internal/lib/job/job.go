// Package job runs background work on asynq, a Redis-backed task queue.
//
// The service enqueues tasks with Client; the worker server started by
// Start pulls them from Redis and runs the registered handlers.
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/go-signup/internal/config"
	"github.com/deppfellow/go-signup/internal/logger"
)

// WelcomeMailer sends the welcome email for a welcome task.
type WelcomeMailer interface {
	SendWelcomeEmail(to, name string) error
}

type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	mailer WelcomeMailer
	logger *zerolog.Logger
}

// NewJobService creates the asynq client and worker server on the configured
// Redis. Workers are weighted critical:default:low = 6:3:1.
func NewJobService(log *zerolog.Logger, cfg *config.Config, mailer WelcomeMailer) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger: asynqLogger{log},
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mailer: mailer,
		logger: log,
	}
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	return mux
}

// Start launches the workers in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(j.mux()); err != nil {
		return fmt.Errorf("starting job server: %w", err)
	}
	return nil
}

// Stop waits for running tasks, then closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("closing job client")
	}
}

// EnqueueWelcomeEmail queues the welcome email for a newly created user.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, to, name string) error {
	task, err := NewWelcomeEmailTask(to, name)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueueing %s: %w", TaskWelcome, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("to", logger.RedactEmail(to)).
		Msg("welcome email enqueued")

	return nil
}

// asynqLogger routes asynq's internal logs through zerolog.
type asynqLogger struct {
	log *zerolog.Logger
}

func (l asynqLogger) Debug(args ...any) { l.log.Debug().Str("component", "asynq").Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...any) { l.log.Info().Str("component", "asynq").Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...any) { l.log.Warn().Str("component", "asynq").Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...any) { l.log.Error().Str("component", "asynq").Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Fatal(args ...any) { l.log.Fatal().Str("component", "asynq").Msg(fmt.Sprint(args...)) }
