package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/judgebot/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/judgebot/internal/models"
)

// Repository defines persistence for open sessions and lifetime totals
type Repository interface {
	// OpenSession records a session start unless one is already open
	OpenSession(ctx context.Context, input *OpenSessionInput) (*OpenSessionOutput, error)

	// CloseSession removes the open session and folds its duration into the lifetime total
	CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error)

	// GetJudgmentRecord reads a user's lifetime total and open session
	GetJudgmentRecord(ctx context.Context, input *GetJudgmentRecordInput) (*models.JudgmentRecord, error)
}
