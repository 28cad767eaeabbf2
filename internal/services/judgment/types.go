package judgment

import (
	"github.com/KirkDiggler/judgebot/internal/common/clock"
	"github.com/KirkDiggler/judgebot/internal/models"
	sessionRepo "github.com/KirkDiggler/judgebot/internal/repositories/session"
)

// Config holds configuration for the judgment service
type Config struct {
	SessionRepo sessionRepo.Repository
	Clock       clock.Clock
}

// JudgeInput identifies the user being judged
type JudgeInput struct {
	UserID int64
}

// JudgeOutput contains the judgment
type JudgeOutput struct {
	Judgment *models.Judgment
}
