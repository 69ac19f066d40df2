package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every specific error below wraps exactly one of them, so
// callers can match either the kind or the specific sentinel with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrNotAuthorized = errors.New("not authorized")
	ErrUpstream      = errors.New("upstream error")
	ErrInvalidFormat = errors.New("invalid format")
)

var (
	ErrInvalidRequest   = fmt.Errorf("%w: invalid request", ErrValidation)
	ErrTitleTooLong     = fmt.Errorf("%w: title must be 15 words or less", ErrValidation)
	ErrTooManyFiles     = fmt.Errorf("%w: at most 7 files can be attached", ErrValidation)
	ErrEmptyAnswer      = fmt.Errorf("%w: enter text or attach at least one file", ErrValidation)
	ErrInvalidAmount    = fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	ErrInvalidRating    = fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	ErrZeroBalance      = fmt.Errorf("%w: cannot withdraw a zero balance", ErrValidation)
	ErrQuestionNotTaken = fmt.Errorf("%w: no tutor assigned to this question", ErrValidation)

	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrTutorNotFound      = fmt.Errorf("%w: tutor not found", ErrNotFound)
	ErrQuestionNotFound   = fmt.Errorf("%w: question not found", ErrNotFound)
	ErrWithdrawalNotFound = fmt.Errorf("%w: withdrawal request not found", ErrNotFound)

	ErrUserAlreadyExists       = fmt.Errorf("%w: user already exists", ErrConflict)
	ErrQuestionAlreadyAssigned = fmt.Errorf("%w: question is already assigned", ErrConflict)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid login or password", ErrNotAuthorized)
	ErrInvalidAuthHeader  = fmt.Errorf("%w: invalid or missing Authorization header", ErrNotAuthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired token", ErrNotAuthorized)
	ErrForbiddenRole      = fmt.Errorf("%w: action not permitted for this role", ErrNotAuthorized)
	ErrNotAssignedTutor   = fmt.Errorf("%w: question is assigned to another tutor", ErrNotAuthorized)

	ErrStorageUnavailable = fmt.Errorf("%w: file storage is not configured", ErrUpstream)

	ErrInvalidDeliveryTimeFormat = fmt.Errorf("%w: delivery time must look like \"3 hours\" or \"2 days\"", ErrInvalidFormat)
)

func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func Upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}

// UploadError reports a multi-file upload that stopped at Failed. Uploaded
// holds the public URLs of the files stored before the failure.
type UploadError struct {
	Failed   string
	Uploaded []string
	Err      error
}

func (e *UploadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "file upload failed: %s", e.Failed)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if len(e.Uploaded) > 0 {
		fmt.Fprintf(&b, " (%d uploaded before failure)", len(e.Uploaded))
	}
	return b.String()
}

func (e *UploadError) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}
