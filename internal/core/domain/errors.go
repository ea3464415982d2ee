package domain

import (
	"errors"
	"fmt"
)

// Connection errors.
var (
	// ErrAuth indicates the user could not be connected to the calling service.
	ErrAuth = errors.New("authentication failed")

	// ErrConnection indicates a join or leave request failed on the calling service.
	ErrConnection = errors.New("call connection failed")

	// ErrNotConnected indicates a call was requested before the user connected.
	ErrNotConnected = errors.New("user not connected")

	// ErrCallNotFound indicates the call does not exist and creation was not requested.
	ErrCallNotFound = errors.New("call not found")
)

// Session errors.
var (
	// ErrInvalidInput indicates a request was rejected before any network action.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionBusy indicates a join or leave is already in progress or a call is active.
	ErrSessionBusy = errors.New("call session busy")

	// ErrDuplicateParticipant indicates a second join for a session id that already has a view.
	ErrDuplicateParticipant = errors.New("participant already has a view")
)

func invalidInput(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, err)
}
