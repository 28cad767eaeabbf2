package tracker

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/judgebot/internal/services/tracker Service

// Service is the per-user session state machine.
// A user is either idle (no open session) or playing (one open session).
type Service interface {
	// ActivityStarted moves an idle user to playing when the tracked activity starts
	ActivityStarted(ctx context.Context, input *ActivityStartedInput) (*ActivityStartedOutput, error)

	// ActivityEnded moves a playing user to idle and folds the session into their total
	ActivityEnded(ctx context.Context, input *ActivityEndedInput) (*ActivityEndedOutput, error)
}
