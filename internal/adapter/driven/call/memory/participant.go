package memory

import (
	"fmt"
	"sync"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/port"
	"github.com/Wyydra/audiorooms/internal/core/signal"
	"github.com/google/uuid"
)

type Participant struct {
	sessionID domain.SessionID
	name      string

	mu     sync.Mutex
	tracks []port.Track

	trackAdded signal.Signal[port.Track]
}

func newParticipant(sessionID domain.SessionID, name string) *Participant {
	return &Participant{sessionID: sessionID, name: name}
}

func (p *Participant) SessionID() domain.SessionID {
	return p.sessionID
}

func (p *Participant) Name() string {
	return p.name
}

func (p *Participant) Tracks() []port.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]port.Track(nil), p.tracks...)
}

func (p *Participant) OnTrackAdded(fn func(port.Participant, port.Track)) signal.Unsubscribe {
	return p.trackAdded.Subscribe(func(t port.Track) { fn(p, t) })
}

// AddTrack publishes a new track of the given kind.
func (p *Participant) AddTrack(kind domain.TrackKind) (port.Track, error) {
	id := uuid.New().String()

	var track port.Track
	switch kind {
	case domain.TrackAudio:
		track = &AudioTrack{id: id}
	case domain.TrackVideo:
		track = &VideoTrack{id: id}
	default:
		return nil, fmt.Errorf("%w: track kind %d", domain.ErrInvalidInput, kind)
	}

	p.mu.Lock()
	p.tracks = append(p.tracks, track)
	p.mu.Unlock()

	p.trackAdded.Emit(track)
	return track, nil
}

type AudioTrack struct {
	id string

	mu   sync.Mutex
	sink port.AudioSink
}

func (t *AudioTrack) ID() string {
	return t.id
}

func (t *AudioTrack) Kind() domain.TrackKind {
	return domain.TrackAudio
}

func (t *AudioTrack) SetAudioSink(sink port.AudioSink) {
	t.mu.Lock()
	t.sink = sink
	t.mu.Unlock()
}

// Push delivers PCM samples to the bound sink. Samples are dropped while no
// sink is bound.
func (t *AudioTrack) Push(pcm []int16) error {
	t.mu.Lock()
	sink := t.sink
	t.mu.Unlock()

	if sink == nil {
		return nil
	}
	return sink.WriteSamples(pcm)
}

type VideoTrack struct {
	id string
}

func (t *VideoTrack) ID() string {
	return t.id
}

func (t *VideoTrack) Kind() domain.TrackKind {
	return domain.TrackVideo
}
