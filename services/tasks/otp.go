package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"attendai/models"

	"github.com/hibiken/asynq"
)

const TypeSendOTP = "email:otp"

// NewOTPTask builds the delivery task for a registration code. The task is
// dropped once the code itself would have expired.
func NewOTPTask(payload models.OTPPayload, validFor time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendOTP, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(30 * time.Second), asynq.Deadline(time.Now().Add(validFor))}

	return task, opts, nil
}

// ParseOTPTask decodes the payload written by NewOTPTask.
func ParseOTPTask(task *asynq.Task) (models.OTPPayload, error) {
	var p models.OTPPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", TypeSendOTP, err)
	}
	if p.Email == "" || p.Code == "" {
		return p, fmt.Errorf("invalid %s payload: missing email or code", TypeSendOTP)
	}
	return p, nil
}
