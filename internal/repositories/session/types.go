package session

// OpenSessionInput contains parameters for opening a session
type OpenSessionInput struct {
	UserID int64

	// StartedAt is the session start in epoch seconds
	StartedAt int64
}

// OpenSessionOutput contains the result of opening a session
type OpenSessionOutput struct {
	// Opened is false when a session was already open
	Opened bool

	// StartedAt is the start of the open session, the existing one when Opened is false
	StartedAt int64
}

// CloseSessionInput contains parameters for closing a session
type CloseSessionInput struct {
	UserID int64

	// EndedAt is the session end in epoch seconds
	EndedAt int64
}

// CloseSessionOutput contains the result of closing a session
type CloseSessionOutput struct {
	// Closed is false when no session was open
	Closed bool

	StartedAt int64

	// ElapsedSeconds is the duration folded into the total, never negative
	ElapsedSeconds int64

	// LifetimeSeconds is the total after the fold
	LifetimeSeconds int64
}

// GetJudgmentRecordInput contains parameters for reading a user's record
type GetJudgmentRecordInput struct {
	UserID int64
}
