package domain

import "time"

type CallType string

const (
	CallTypeDefault   CallType = "default"
	CallTypeAudioRoom CallType = "audio_room"
)

// JoinRequest carries the policy flags sent with a create-or-join.
type JoinRequest struct {
	Type   CallType
	CallID CallID
	Create bool // create the call if it does not exist yet
	Ring   bool // ring the other members
	Notify bool // push a notification to the other members
}

type SessionState int

const (
	SessionIdle SessionState = iota
	SessionJoining
	SessionActive
	SessionLeaving
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionJoining:
		return "joining"
	case SessionActive:
		return "active"
	case SessionLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// SessionRecord is kept for every call that was joined and then left.
type SessionRecord struct {
	ID           RecordID
	CallID       CallID
	JoinedAt     time.Time
	LeftAt       time.Time
	Participants int // views torn down when the call was left
}

func (r SessionRecord) Duration() time.Duration {
	return r.LeftAt.Sub(r.JoinedAt)
}
