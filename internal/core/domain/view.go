package domain

import "time"

type ViewEventType string

const (
	ViewCreated   ViewEventType = "view_created"
	ViewDestroyed ViewEventType = "view_destroyed"
	AudioBound    ViewEventType = "audio_bound"
)

// ViewEvent is pushed to UI clients whenever a participant view changes.
type ViewEvent struct {
	Type      ViewEventType
	SessionID SessionID
	Title     string
	TrackID   string
	At        time.Time
}

// ParticipantInfo is a read-only snapshot of a registered view.
type ParticipantInfo struct {
	SessionID  SessionID `json:"session_id"`
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	AudioBound bool      `json:"audio_bound"`
}
