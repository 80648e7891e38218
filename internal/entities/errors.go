// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrKudosExists signals duplicate ledger id.
	ErrKudosExists = errors.New("kudos exists")
	// ErrUnauthenticated signals a request without a resolvable identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden signals a role not allowed to access a resource.
	ErrForbidden = errors.New("forbidden")
	// ErrGenerationFailed signals a failed call to a generative collaborator.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrGenerationDisabled signals that no generator is configured.
	ErrGenerationDisabled = errors.New("generation disabled")
)

// RejectionReason is the machine-readable cause of a refused issuance.
type RejectionReason string

const (
	// ReasonUnknownUser means sender or receiver does not resolve to a user.
	ReasonUnknownUser RejectionReason = "UNKNOWN_USER"
	// ReasonSelfTarget means sender and receiver are the same user.
	ReasonSelfTarget RejectionReason = "SELF_TARGET"
	// ReasonEmptyMessage means the message is blank.
	ReasonEmptyMessage RejectionReason = "EMPTY_MESSAGE"
	// ReasonRoleNotAuthorized means a non team lead tried to award gold.
	ReasonRoleNotAuthorized RejectionReason = "ROLE_NOT_AUTHORIZED"
	// ReasonRecipientNotEligible means a gold receiver is not a direct report of the sender.
	ReasonRecipientNotEligible RejectionReason = "RECIPIENT_NOT_ELIGIBLE"
	// ReasonQuotaExceeded means the sender has no quota left this month.
	ReasonQuotaExceeded RejectionReason = "QUOTA_EXCEEDED"
)

// RejectionError is returned by the issuance gate. It never accompanies a ledger mutation.
type RejectionError struct {
	Reason RejectionReason
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return "kudos rejected: " + string(e.Reason)
	}
	return fmt.Sprintf("kudos rejected: %s: %s", e.Reason, e.Detail)
}

// Is matches any RejectionError with the same reason, so detailed rejections
// compare equal to the sentinels below.
func (e *RejectionError) Is(target error) bool {
	var t *RejectionError
	if !errors.As(target, &t) {
		return false
	}
	return t.Reason == e.Reason
}

// Reject builds a detailed rejection.
func Reject(reason RejectionReason, detail string) *RejectionError {
	return &RejectionError{Reason: reason, Detail: detail}
}

var (
	// ErrUnknownUser matches rejections with ReasonUnknownUser.
	ErrUnknownUser = &RejectionError{Reason: ReasonUnknownUser}
	// ErrSelfTarget matches rejections with ReasonSelfTarget.
	ErrSelfTarget = &RejectionError{Reason: ReasonSelfTarget}
	// ErrEmptyMessage matches rejections with ReasonEmptyMessage.
	ErrEmptyMessage = &RejectionError{Reason: ReasonEmptyMessage}
	// ErrRoleNotAuthorized matches rejections with ReasonRoleNotAuthorized.
	ErrRoleNotAuthorized = &RejectionError{Reason: ReasonRoleNotAuthorized}
	// ErrRecipientNotEligible matches rejections with ReasonRecipientNotEligible.
	ErrRecipientNotEligible = &RejectionError{Reason: ReasonRecipientNotEligible}
	// ErrQuotaExceeded matches rejections with ReasonQuotaExceeded.
	ErrQuotaExceeded = &RejectionError{Reason: ReasonQuotaExceeded}
)

// RejectionReasonOf extracts the rejection reason from err, if any.
func RejectionReasonOf(err error) (RejectionReason, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return "", false
}
