// Package worker consumes background jobs from NATS and executes them.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/shoplite/shoplite/internal/email"
	"github.com/shoplite/shoplite/internal/jobs"
)

// Config holds worker settings.
type Config struct {
	// WorkerID uniquely identifies this worker instance in logs.
	WorkerID string

	// QueueGroup is the NATS queue group; workers in the same group share
	// the job stream.
	QueueGroup string

	// JobTimeout bounds the processing time of a single job.
	JobTimeout time.Duration
}

// Worker subscribes to job subjects and processes messages until stopped.
type Worker struct {
	config Config
	conn   *nats.Conn
	sender email.Sender
	logger zerolog.Logger
}

func NewWorker(conn *nats.Conn, sender email.Sender, config Config, logger zerolog.Logger) *Worker {
	if config.WorkerID == "" {
		config.WorkerID = fmt.Sprintf("worker-%s", uuid.New().String()[:8])
	}
	if config.QueueGroup == "" {
		config.QueueGroup = "shoplite-workers"
	}
	if config.JobTimeout == 0 {
		config.JobTimeout = 30 * time.Second
	}
	return &Worker{config: config, conn: conn, sender: sender, logger: logger}
}

// Start subscribes and processes jobs until the context is cancelled. The
// subscription is drained on shutdown so in-flight messages finish.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info().
		Str("worker_id", w.config.WorkerID).
		Str("queue_group", w.config.QueueGroup).
		Msg("worker starting")

	msgs := make(chan *nats.Msg, 64)
	sub, err := w.conn.ChanQueueSubscribe(jobs.SubjectEmailConfirmation, w.config.QueueGroup, msgs)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", jobs.SubjectEmailConfirmation, err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("worker_id", w.config.WorkerID).Msg("worker shutting down")
			if err := sub.Drain(); err != nil {
				w.logger.Error().Err(err).Msg("failed to drain subscription")
			} else {
				w.awaitDrain(sub)
			}
			w.processRemaining(msgs)
			return ctx.Err()

		case msg := <-msgs:
			w.process(ctx, msg)
		}
	}
}

// awaitDrain waits until the drained subscription stops delivering, bounded
// by the job timeout. Drain is asynchronous and the library never closes a
// caller-owned channel.
func (w *Worker) awaitDrain(sub *nats.Subscription) {
	deadline := time.Now().Add(w.config.JobTimeout)
	for sub.IsValid() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
}

// processRemaining finishes jobs that reached the channel before the drain
// completed. The parent context is already cancelled, so jobs run against a
// fresh one bounded by the per-job timeout.
func (w *Worker) processRemaining(msgs chan *nats.Msg) {
	for {
		select {
		case msg := <-msgs:
			w.process(context.Background(), msg)
		default:
			return
		}
	}
}

func (w *Worker) process(ctx context.Context, msg *nats.Msg) {
	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancel()

	if err := w.processConfirmation(jobCtx, msg.Data); err != nil {
		w.logger.Error().Err(err).
			Str("subject", msg.Subject).
			Msg("job failed")
		return
	}
	w.logger.Info().Str("subject", msg.Subject).Msg("job completed")
}

func (w *Worker) processConfirmation(ctx context.Context, data []byte) error {
	var payload jobs.EmailConfirmation
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("unmarshal confirmation payload: %w", err)
	}

	name := payload.FirstName
	if name == "" {
		name = payload.UserName
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nThanks for registering. Please confirm your email address by visiting:\n\n/api/v1/users/%s/confirm-email\n\nIf you did not create this account, ignore this message.\n",
		name, payload.UserID,
	)

	return w.sender.Send(ctx, email.Message{
		To:      payload.Email,
		Subject: "Confirm your email address",
		Body:    body,
	})
}
