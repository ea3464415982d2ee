package service

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/port"
	"github.com/Wyydra/audiorooms/internal/core/signal"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// ParticipantSource is what the registry listens to, usually a
// CallSessionController.
type ParticipantSource interface {
	OnParticipantJoined(fn func(port.Participant)) signal.Unsubscribe
	OnParticipantLeft(fn func(domain.SessionID)) signal.Unsubscribe
}

type viewEntry struct {
	participant  port.Participant
	view         port.ParticipantView
	seen         map[string]bool
	audioBound   bool
	stopTracking signal.Unsubscribe
}

// ParticipantViewRegistry keeps exactly one view per participant session id.
type ParticipantViewRegistry struct {
	container port.ViewContainer
	log       zerolog.Logger

	mu    sync.Mutex
	views map[domain.SessionID]*viewEntry
}

func NewParticipantViewRegistry(container port.ViewContainer, log zerolog.Logger) *ParticipantViewRegistry {
	return &ParticipantViewRegistry{
		container: container,
		log:       log.With().Str("component", "view_registry").Logger(),
		views:     make(map[domain.SessionID]*viewEntry),
	}
}

// Attach subscribes the registry to source. The returned token detaches both
// handlers.
func (r *ParticipantViewRegistry) Attach(source ParticipantSource) signal.Unsubscribe {
	stopJoined := source.OnParticipantJoined(func(p port.Participant) {
		if err := r.OnParticipantJoined(p); err != nil {
			r.log.Warn().Err(err).Str("session_id", p.SessionID().String()).Msg("Participant joined twice")
		}
	})
	stopLeft := source.OnParticipantLeft(r.OnParticipantLeft)
	return func() {
		stopJoined()
		stopLeft()
	}
}

// OnParticipantJoined creates the view for p and binds its current and future
// audio tracks. A second join for the same session id is rejected and leaves
// the existing view in place.
func (r *ParticipantViewRegistry) OnParticipantJoined(p port.Participant) error {
	sessionID := p.SessionID()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.views[sessionID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateParticipant, sessionID)
	}

	view, err := r.container.CreateView(p)
	if err != nil {
		return fmt.Errorf("create view for %s: %w", sessionID, err)
	}

	entry := &viewEntry{participant: p, view: view, seen: make(map[string]bool)}
	r.views[sessionID] = entry

	// Subscribe before listing so a track added in between is not lost; the
	// seen set drops the duplicate.
	entry.stopTracking = p.OnTrackAdded(r.OnTrackAdded)
	for _, track := range p.Tracks() {
		r.bindTrack(entry, track)
	}

	r.log.Debug().Str("session_id", sessionID.String()).Str("title", view.Title()).Msg("View created")
	return nil
}

// OnParticipantLeft destroys the view of sessionID. Unknown ids are ignored
// since leave events may race with local cleanup.
func (r *ParticipantViewRegistry) OnParticipantLeft(sessionID domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.views[sessionID]
	if !ok {
		r.log.Debug().Str("session_id", sessionID.String()).Msg("Leave for unknown participant ignored")
		return
	}
	delete(r.views, sessionID)
	r.destroy(entry)

	r.log.Debug().Str("session_id", sessionID.String()).Msg("View destroyed")
}

func (r *ParticipantViewRegistry) OnTrackAdded(p port.Participant, track port.Track) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.views[p.SessionID()]
	if !ok {
		return
	}
	r.bindTrack(entry, track)
}

// Clear destroys every view and returns how many there were.
func (r *ParticipantViewRegistry) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.views)
	for _, entry := range r.views {
		r.destroy(entry)
	}
	clear(r.views)
	return n
}

func (r *ParticipantViewRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// SessionIDs returns the registered session ids in sorted order.
func (r *ParticipantViewRegistry) SessionIDs() []domain.SessionID {
	r.mu.Lock()
	ids := lo.Keys(r.views)
	r.mu.Unlock()

	slices.Sort(ids)
	return ids
}

func (r *ParticipantViewRegistry) View(sessionID domain.SessionID) (port.ParticipantView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.views[sessionID]
	if !ok {
		return nil, false
	}
	return entry.view, true
}

// Participants returns a snapshot of every registered view, sorted by session id.
func (r *ParticipantViewRegistry) Participants() []domain.ParticipantInfo {
	r.mu.Lock()
	infos := lo.MapToSlice(r.views, func(id domain.SessionID, e *viewEntry) domain.ParticipantInfo {
		return domain.ParticipantInfo{
			SessionID:  id,
			Name:       e.participant.Name(),
			Title:      e.view.Title(),
			AudioBound: e.audioBound,
		}
	})
	r.mu.Unlock()

	slices.SortFunc(infos, func(a, b domain.ParticipantInfo) int {
		return cmp.Compare(a.SessionID, b.SessionID)
	})
	return infos
}

// bindTrack must be called with r.mu held.
func (r *ParticipantViewRegistry) bindTrack(entry *viewEntry, track port.Track) {
	if entry.seen[track.ID()] {
		return
	}
	entry.seen[track.ID()] = true

	l := r.log.With().
		Str("session_id", entry.participant.SessionID().String()).
		Str("track_id", track.ID()).
		Str("kind", track.Kind().String()).
		Logger()

	if track.Kind() != domain.TrackAudio {
		l.Debug().Msg("Non-audio track ignored")
		return
	}
	audio, ok := track.(port.AudioTrack)
	if !ok {
		l.Warn().Msg("Audio track cannot be played locally")
		return
	}
	entry.view.BindAudio(audio)
	entry.audioBound = true
	l.Info().Msg("Audio track bound")
}

func (r *ParticipantViewRegistry) destroy(entry *viewEntry) {
	if entry.stopTracking != nil {
		entry.stopTracking()
	}
	entry.view.Destroy()
}
