package memory

import (
	"slices"
	"sync"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/port"
	"github.com/Wyydra/audiorooms/internal/core/signal"
)

type Call struct {
	id       domain.CallID
	callType domain.CallType

	mu           sync.Mutex
	participants []*Participant

	joined signal.Signal[port.Participant]
	left   signal.Signal[domain.SessionID]
}

func newCall(id domain.CallID, callType domain.CallType) *Call {
	return &Call{id: id, callType: callType}
}

func (c *Call) ID() domain.CallID {
	return c.id
}

func (c *Call) Type() domain.CallType {
	return c.callType
}

func (c *Call) Participants() []port.Participant {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]port.Participant, len(c.participants))
	for i, p := range c.participants {
		out[i] = p
	}
	return out
}

func (c *Call) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.participants)
}

func (c *Call) OnParticipantJoined(fn func(port.Participant)) signal.Unsubscribe {
	return c.joined.Subscribe(fn)
}

func (c *Call) OnParticipantLeft(fn func(domain.SessionID)) signal.Unsubscribe {
	return c.left.Subscribe(fn)
}

// AddParticipant puts a new participant named name in the call and notifies
// subscribers.
func (c *Call) AddParticipant(name string) *Participant {
	p := newParticipant(domain.NewSessionID(), name)

	c.mu.Lock()
	c.participants = append(c.participants, p)
	c.mu.Unlock()

	c.joined.Emit(p)
	return p
}

// RemoveParticipant drops sessionID from the call and notifies subscribers.
// It reports whether the participant was present.
func (c *Call) RemoveParticipant(sessionID domain.SessionID) bool {
	c.mu.Lock()
	i := slices.IndexFunc(c.participants, func(p *Participant) bool {
		return p.sessionID == sessionID
	})
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	c.participants = slices.Delete(c.participants, i, i+1)
	c.mu.Unlock()

	c.left.Emit(sessionID)
	return true
}

func (c *Call) Participant(sessionID domain.SessionID) (*Participant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.participants {
		if p.sessionID == sessionID {
			return p, true
		}
	}
	return nil, false
}
