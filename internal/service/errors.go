package service

import (
	"errors"
	"fmt"
)

// Error taxonomy of the negotiation engine. Every failure leaves stored state untouched.
var (
	// ErrValidation is returned for malformed input or a request that breaks a business rule
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidTransition is returned when an action is not allowed in the current state
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrCampaignClosed is returned for actions on a campaign that is no longer active
	ErrCampaignClosed = errors.New("campaign is closed")

	// ErrConflict is returned when a concurrent modification was detected; retrying is safe
	ErrConflict = errors.New("concurrent modification")

	// ErrPartyContextRequired is returned when no caller identity was resolved
	ErrPartyContextRequired = errors.New("party context required")
)

// Specific errors. Each wraps one of the taxonomy errors above so callers can
// match either the specific or the general class with errors.Is.
var (
	ErrCampaignNotFound     = fmt.Errorf("campaign %w", ErrNotFound)
	ErrBidNotFound          = fmt.Errorf("bid %w", ErrNotFound)
	ErrContractNotFound     = fmt.Errorf("contract %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)

	ErrQuantityMismatch     = fmt.Errorf("%w: bid quantity must equal campaign quantity", ErrValidation)
	ErrNonConvergentCounter = fmt.Errorf("%w: counter-offer must move toward agreement", ErrValidation)
	ErrInvalidRole          = fmt.Errorf("%w: role must be farmer or buyer", ErrValidation)
	ErrInvalidStage         = fmt.Errorf("%w: unknown stage", ErrValidation)
	ErrNotAParty            = fmt.Errorf("%w: caller is not a party to this resource", ErrValidation)

	ErrBidTerminal    = fmt.Errorf("%w: bid is already accepted or rejected", ErrInvalidTransition)
	ErrNotYourTurn    = fmt.Errorf("%w: a party cannot act on its own standing offer", ErrInvalidTransition)
	ErrContractClosed = fmt.Errorf("%w: contract is completed", ErrInvalidTransition)

	// ErrInvalidStageTransition is returned when a stage change does not move in the allowed direction
	ErrInvalidStageTransition = fmt.Errorf("%w: stage change not allowed", ErrInvalidTransition)
)

func validationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
