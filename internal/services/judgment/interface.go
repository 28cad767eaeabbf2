package judgment

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/judgebot/internal/services/judgment Service

// Service answers how long a user has spent on the tracked activity
type Service interface {
	// Judge returns the user's lifetime total, including any session still open
	Judge(ctx context.Context, input *JudgeInput) (*JudgeOutput, error)
}
