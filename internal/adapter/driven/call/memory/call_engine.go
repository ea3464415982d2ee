// Package memory is an in-process CallService. It keeps calls and their
// participants in memory and lets tests or the simulation API drive remote
// participants.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/port"
	"github.com/rs/zerolog"
)

type CallEngine struct {
	apiKey string
	log    zerolog.Logger

	mu    sync.Mutex
	user  string
	calls map[domain.CallID]*Call
	local map[domain.CallID]domain.SessionID
}

// NewCallEngine returns an engine that accepts users presenting apiKey.
func NewCallEngine(apiKey string, log zerolog.Logger) *CallEngine {
	return &CallEngine{
		apiKey: apiKey,
		log:    log.With().Str("component", "memory_call_engine").Logger(),
		calls:  make(map[domain.CallID]*Call),
		local:  make(map[domain.CallID]domain.SessionID),
	}
}

func (e *CallEngine) ConnectUser(ctx context.Context, creds domain.Credentials) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAuth, err)
	}
	if creds.APIKey != e.apiKey || creds.Token == "" {
		return fmt.Errorf("%w: invalid api key or token for %q", domain.ErrAuth, creds.UserID)
	}

	e.mu.Lock()
	e.user = creds.UserID
	e.mu.Unlock()

	e.log.Debug().Str("user_id", creds.UserID).Msg("User connected")
	return nil
}

func (e *CallEngine) JoinCall(ctx context.Context, req domain.JoinRequest) (port.Call, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}

	e.mu.Lock()
	if e.user == "" {
		e.mu.Unlock()
		return nil, domain.ErrNotConnected
	}
	if _, ok := e.local[req.CallID]; ok {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w: already in %s", domain.ErrConnection, req.CallID)
	}
	call, ok := e.calls[req.CallID]
	if !ok {
		if !req.Create {
			e.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", domain.ErrCallNotFound, req.CallID)
		}
		call = newCall(req.CallID, req.Type)
		e.calls[req.CallID] = call
	}
	user := e.user
	e.mu.Unlock()

	self := call.AddParticipant(user)

	e.mu.Lock()
	e.local[req.CallID] = self.SessionID()
	e.mu.Unlock()

	e.log.Debug().
		Str("call_id", req.CallID.String()).
		Str("type", string(req.Type)).
		Bool("ring", req.Ring).
		Bool("notify", req.Notify).
		Msg("Call joined")
	return call, nil
}

func (e *CallEngine) LeaveCall(ctx context.Context, handle port.Call) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}

	id := handle.ID()

	e.mu.Lock()
	call, ok := e.calls[id]
	sessionID, joined := e.local[id]
	delete(e.local, id)
	e.mu.Unlock()

	if !ok || !joined {
		return fmt.Errorf("%w: not in %s", domain.ErrConnection, id)
	}
	call.RemoveParticipant(sessionID)

	if call.Len() == 0 {
		e.mu.Lock()
		delete(e.calls, id)
		e.mu.Unlock()
	}

	e.log.Debug().Str("call_id", id.String()).Msg("Call left")
	return nil
}

// Call returns the call named id, if it exists.
func (e *CallEngine) Call(id domain.CallID) (*Call, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	call, ok := e.calls[id]
	return call, ok
}

// OpenCall returns the call named id, creating it when needed, so remote
// participants can be placed in it before the local user joins.
func (e *CallEngine) OpenCall(id domain.CallID) *Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	call, ok := e.calls[id]
	if !ok {
		call = newCall(id, domain.CallTypeDefault)
		e.calls[id] = call
	}
	return call
}
