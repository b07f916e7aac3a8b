// Package tasks defines the asynq task types exchanged between the API
// process and the worker.
package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypeResetEmail is the task type for password-reset email delivery.
const TypeResetEmail = "email:reset"

// ResetEmailPayload carries everything the worker needs to send a reset mail.
type ResetEmailPayload struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// NewResetEmailTask builds the task enqueued when a reset is requested.
func NewResetEmailTask(email, token string) (*asynq.Task, error) {
	payload, err := json.Marshal(ResetEmailPayload{Email: email, Token: token})
	if err != nil {
		return nil, fmt.Errorf("tasks: marshal reset email payload: %w", err)
	}
	return asynq.NewTask(TypeResetEmail, payload), nil
}
