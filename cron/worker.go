package cron

import (
	"context"
	"time"

	"attendai/config"
	"attendai/services/notification"
	"attendai/services/tasks"
	"attendai/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the Redis connection used by both the queue client and the worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitMailWorker runs the async mail worker in background and returns the
// server so the caller can shut it down.
func InitMailWorker(mailer notification.Mailer) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendOTP, handleOTPTask(mailer, logger))

	go func() {
		logger.Info("Starting mail worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Mail worker failed to start",
				zap.Int("attempt", attempts), zap.Int("max", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Mail worker gave up; OTP emails will not be delivered")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

func handleOTPTask(mailer notification.Mailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseOTPTask(task)
		if err != nil {
			logger.Error("Dropping OTP task", zap.Error(err))
			return asynq.SkipRetry
		}

		msg := notification.OTPMessage(p.Email, p.Code, utils.OTPTTL)
		if err := mailer.Send(ctx, msg); err != nil {
			logger.Error("Failed to send OTP email", zap.String("email", p.Email), zap.Error(err))
			return err
		}
		logger.Info("OTP email sent", zap.String("email", p.Email))
		return nil
	}
}
