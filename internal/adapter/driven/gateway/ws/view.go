package ws

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/port"
)

// ViewContainer renders participants as panels on the connected UI clients.
type ViewContainer struct {
	gateway port.ViewGateway
	now     func() time.Time
}

func NewViewContainer(gateway port.ViewGateway) *ViewContainer {
	return &ViewContainer{gateway: gateway, now: time.Now}
}

func (c *ViewContainer) CreateView(p port.Participant) (port.ParticipantView, error) {
	panel := &Panel{
		container: c,
		sessionID: p.SessionID(),
		title:     fmt.Sprintf("Participant - %s (%s)", p.Name(), p.SessionID()),
	}
	c.publish(domain.ViewEvent{Type: domain.ViewCreated, SessionID: panel.sessionID, Title: panel.title})
	return panel, nil
}

func (c *ViewContainer) publish(ev domain.ViewEvent) {
	ev.At = c.now()
	_ = c.gateway.BroadcastEvent(context.Background(), ev)
}

// Panel is the UI view of one participant. It is also the audio sink its
// participant's audio track plays into.
type Panel struct {
	container *ViewContainer
	sessionID domain.SessionID
	title     string

	samples atomic.Int64
	destroy sync.Once
	gone    atomic.Bool

	mu    sync.Mutex
	track port.AudioTrack
}

func (p *Panel) Title() string {
	return p.title
}

func (p *Panel) BindAudio(track port.AudioTrack) {
	p.mu.Lock()
	p.track = track
	p.mu.Unlock()

	track.SetAudioSink(p)
	p.container.publish(domain.ViewEvent{
		Type:      domain.AudioBound,
		SessionID: p.sessionID,
		Title:     p.title,
		TrackID:   track.ID(),
	})
}

func (p *Panel) WriteSamples(pcm []int16) error {
	if p.gone.Load() {
		return fmt.Errorf("panel %s destroyed", p.sessionID)
	}
	p.samples.Add(int64(len(pcm)))
	return nil
}

// Samples returns how many PCM samples were played into the panel.
func (p *Panel) Samples() int64 {
	return p.samples.Load()
}

func (p *Panel) Destroy() {
	p.destroy.Do(func() {
		p.gone.Store(true)

		p.mu.Lock()
		track := p.track
		p.track = nil
		p.mu.Unlock()
		if track != nil {
			track.SetAudioSink(nil)
		}

		p.container.publish(domain.ViewEvent{Type: domain.ViewDestroyed, SessionID: p.sessionID, Title: p.title})
	})
}
