package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSubmissionNotFound      = errors.New("submission not found")
	ErrProjectNotFound         = errors.New("project not found")
	ErrDonationNotFound        = errors.New("donation not found")
	ErrWireTransferNotFound    = errors.New("wire transfer not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrContactNotFound         = errors.New("contact submission not found")
	ErrSubscriberNotFound      = errors.New("subscriber not found")
	ErrAlreadyReviewed         = errors.New("submission has already been processed")
	ErrSubmissionNotEditable   = errors.New("only pending submissions can be edited")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrEmailTaken              = errors.New("user with this email already exists")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrAccountDisabled         = errors.New("account is disabled")
)

// ValidationError reports a failed field-level check on a request
// payload. Handlers map it to a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// TransitionError reports an illegal status transition request.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}
