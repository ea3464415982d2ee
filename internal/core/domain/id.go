package domain

import (
	"strings"

	"github.com/google/uuid"
)

// CallID is the user-chosen name of a call, e.g. "room-1".
type CallID string

// NewCallID trims and validates a call id typed by the user.
func NewCallID(s string) (CallID, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required,max=64,printascii"); err != nil {
		return "", invalidInput("call id", err)
	}
	return CallID(s), nil
}

func (id CallID) String() string {
	return string(id)
}

// SessionID identifies one participant in one call. The same user joining
// twice gets two session ids.
type SessionID string

func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

func (s SessionID) String() string {
	return string(s)
}

type RecordID uuid.UUID

func NewRecordID() RecordID {
	return RecordID(uuid.New())
}

func (id RecordID) String() string {
	return uuid.UUID(id).String()
}
