package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingRepo "voyago/database/repository/booking"
	listingRepo "voyago/database/repository/listing"
	paymentRepo "voyago/database/repository/payment"
	"voyago/models"
	"voyago/services/notification"
	"voyago/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Options configures the notification worker.
type Options struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Concurrency   int
}

// Start runs the async notification worker in the background with startup
// retries. Tasks are at-least-once; the dispatcher's sent-markers make
// redelivery a safe no-op.
func Start(opts Options, notifSvc notification.Service, logger *zap.Logger) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
		DB:       opts.RedisDB,
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: opts.Concurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleBookingConfirmation(notifSvc, logger))
	mux.HandleFunc(tasks.TypePaymentConfirmation, handlePaymentConfirmation(notifSvc, logger))

	go monitorRedisConnection(opts, logger)

	go func() {
		logger.Info("starting notification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("notification worker failed to start",
					zap.Int("attempt", attempts), zap.Int("max_attempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("notification worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingConfirmation(notifSvc notification.Service, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid booking confirmation payload", zap.Error(err))
			return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
		}

		err := notifSvc.SendBookingConfirmation(ctx, p.BookingID)
		return mapDispatchError(err)
	}
}

func handlePaymentConfirmation(notifSvc notification.Service, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PaymentConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid payment confirmation payload", zap.Error(err))
			return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
		}

		err := notifSvc.SendPaymentConfirmation(ctx, p.PaymentID)
		return mapDispatchError(err)
	}
}

// mapDispatchError keeps transport failures retryable through queue
// redelivery while marking unfixable failures (missing entity, missing
// recipient) as non-retryable.
func mapDispatchError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bookingRepo.ErrNotFound) ||
		errors.Is(err, listingRepo.ErrNotFound) ||
		errors.Is(err, paymentRepo.ErrNotFound) ||
		errors.Is(err, notification.ErrMissingRecipient) {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	return err
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(opts Options, logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
		DB:       opts.RedisDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("notification worker: redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
