package service

import (
	"errors"
	"sync"

	"github.com/Wyydra/audiorooms/internal/core/port"
)

type fakeView struct {
	title     string
	bound     []string
	destroyed int
}

func (v *fakeView) Title() string { return v.title }

func (v *fakeView) BindAudio(track port.AudioTrack) {
	v.bound = append(v.bound, track.ID())
	track.SetAudioSink(v)
}

func (v *fakeView) WriteSamples([]int16) error { return nil }

func (v *fakeView) Destroy() { v.destroyed++ }

type fakeContainer struct {
	mu      sync.Mutex
	created []*fakeView
	fail    bool
	// onCreate, when set, runs before each view is built.
	onCreate func(port.Participant)
}

func (c *fakeContainer) CreateView(p port.Participant) (port.ParticipantView, error) {
	if c.fail {
		return nil, errors.New("container closed")
	}
	if c.onCreate != nil {
		c.onCreate(p)
	}
	v := &fakeView{title: "Participant - " + p.Name() + " (" + p.SessionID().String() + ")"}
	c.mu.Lock()
	c.created = append(c.created, v)
	c.mu.Unlock()
	return v, nil
}

func (c *fakeContainer) destroyed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.created {
		n += v.destroyed
	}
	return n
}
