package models

// JudgmentRecord is the persisted tracking state for one user
type JudgmentRecord struct {
	// UserID is the platform ID of the user
	UserID int64

	// LifetimeSeconds is the total over all completed sessions
	LifetimeSeconds int64

	// Playing reports whether a session is currently open
	Playing bool

	// StartedAt is the open session's start in epoch seconds, zero when not playing
	StartedAt int64
}

// Judgment is a user's tracked time as seen at query time
type Judgment struct {
	// UserID is the platform ID of the judged user
	UserID int64

	// TotalSeconds is the lifetime total plus any open session projected to now
	TotalSeconds int64

	// Playing reports whether a session was open at query time
	Playing bool

	// NeverTracked is set when TotalSeconds is zero
	NeverTracked bool

	// Breakdown is TotalSeconds split into hours, minutes and seconds
	Breakdown Breakdown
}

// Breakdown is a truncating hours/minutes/seconds decomposition
type Breakdown struct {
	Hours   int64
	Minutes int64
	Seconds int64
}

// NewBreakdown splits a non-negative number of seconds.
// Hours*3600 + Minutes*60 + Seconds always equals total.
func NewBreakdown(total int64) Breakdown {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total - hours*3600) / 60
	return Breakdown{
		Hours:   hours,
		Minutes: minutes,
		Seconds: total - hours*3600 - minutes*60,
	}
}

// TotalSeconds recombines the breakdown
func (b Breakdown) TotalSeconds() int64 {
	return b.Hours*3600 + b.Minutes*60 + b.Seconds
}
