//go:generate go run go.uber.org/mock/mockgen -source=call_service.go -destination=../../mocks/mock_call_service.go -package=mocks
package port

import (
	"context"

	"github.com/Wyydra/audiorooms/internal/core/domain"
)

// CallService is the calling SDK: it owns signaling, media and participant
// state. Implementations report failures as domain.ErrAuth or
// domain.ErrConnection.
type CallService interface {
	ConnectUser(ctx context.Context, creds domain.Credentials) error
	JoinCall(ctx context.Context, req domain.JoinRequest) (Call, error)
	LeaveCall(ctx context.Context, call Call) error
}
