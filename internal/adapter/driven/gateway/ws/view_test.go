package ws

import (
	"context"
	"testing"
	"time"

	"github.com/Wyydra/audiorooms/internal/adapter/driven/call/memory"
	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingGateway struct {
	events []domain.ViewEvent
}

func (g *recordingGateway) BroadcastEvent(_ context.Context, ev domain.ViewEvent) error {
	g.events = append(g.events, ev)
	return nil
}

func (g *recordingGateway) types() []domain.ViewEventType {
	out := make([]domain.ViewEventType, len(g.events))
	for i, ev := range g.events {
		out[i] = ev.Type
	}
	return out
}

func TestViewContainer_PanelLifecycle(t *testing.T) {
	req := require.New(t)
	gw := &recordingGateway{}
	container := NewViewContainer(gw)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	container.now = func() time.Time { return at }

	p := memory.NewCallEngine("key", zerolog.Nop()).OpenCall("room-1").AddParticipant("bob")

	view, err := container.CreateView(p)
	req.NoError(err)
	req.Equal("Participant - bob ("+p.SessionID().String()+")", view.Title())

	track, err := p.AddTrack(domain.TrackAudio)
	req.NoError(err)
	audio := track.(*memory.AudioTrack)
	view.BindAudio(audio)

	req.NoError(audio.Push(make([]int16, 160)))
	req.NoError(audio.Push(make([]int16, 160)))
	panel := view.(*Panel)
	req.EqualValues(320, panel.Samples())

	view.Destroy()
	view.Destroy()
	req.NoError(audio.Push(make([]int16, 160)), "destroyed panel is no longer the sink")
	req.EqualValues(320, panel.Samples())
	req.Error(panel.WriteSamples(make([]int16, 160)))

	req.Equal([]domain.ViewEventType{domain.ViewCreated, domain.AudioBound, domain.ViewDestroyed}, gw.types())
	req.Equal(track.ID(), gw.events[1].TrackID)
	for _, ev := range gw.events {
		req.Equal(p.SessionID(), ev.SessionID)
		req.Equal(at, ev.At)
	}
}
