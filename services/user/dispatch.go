package user

import (
	"context"
	"fmt"

	"attendai/models"
	"attendai/services/notification"
	"attendai/services/tasks"
	"attendai/utils"

	"github.com/hibiken/asynq"
)

// QueueDispatcher enqueues OTP delivery for the mail worker.
type QueueDispatcher struct {
	client *asynq.Client
}

func NewQueueDispatcher(client *asynq.Client) *QueueDispatcher {
	return &QueueDispatcher{client: client}
}

func (d *QueueDispatcher) DispatchOTP(ctx context.Context, payload models.OTPPayload) error {
	task, opts, err := tasks.NewOTPTask(payload, utils.OTPTTL)
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", tasks.TypeSendOTP, err)
	}
	return nil
}

// DirectDispatcher sends the email inline. Used when no queue is running.
type DirectDispatcher struct {
	mailer notification.Mailer
}

func NewDirectDispatcher(mailer notification.Mailer) *DirectDispatcher {
	return &DirectDispatcher{mailer: mailer}
}

func (d *DirectDispatcher) DispatchOTP(ctx context.Context, payload models.OTPPayload) error {
	return d.mailer.Send(ctx, notification.OTPMessage(payload.Email, payload.Code, utils.OTPTTL))
}
