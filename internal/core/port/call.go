package port

import (
	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/signal"
)

// Call is the handle returned by a successful join.
type Call interface {
	ID() domain.CallID
	// Participants lists everyone currently in the call, the local user
	// included. Order is whatever the service enumerates and may change
	// between calls.
	Participants() []Participant
	OnParticipantJoined(fn func(Participant)) signal.Unsubscribe
	OnParticipantLeft(fn func(domain.SessionID)) signal.Unsubscribe
}

type Participant interface {
	SessionID() domain.SessionID
	Name() string
	Tracks() []Track
	OnTrackAdded(fn func(Participant, Track)) signal.Unsubscribe
}

type Track interface {
	ID() string
	Kind() domain.TrackKind
}

// AudioTrack is a track that can play into a local audio sink.
type AudioTrack interface {
	Track
	SetAudioSink(sink AudioSink)
}

type AudioSink interface {
	WriteSamples(pcm []int16) error
}
