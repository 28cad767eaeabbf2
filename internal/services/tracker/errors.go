package tracker

// TrackerError is a custom error type for tracker errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        TrackerError = "config cannot be nil"
	ErrNilSessionRepo   TrackerError = "session repository cannot be nil"
	ErrNilAlarmService  TrackerError = "alarm service cannot be nil"
	ErrNilClock         TrackerError = "clock cannot be nil"
	ErrNilInput         TrackerError = "input cannot be nil"
	ErrEmptyTrackedName TrackerError = "tracked activity name cannot be empty"
	ErrInvalidUserID    TrackerError = "user ID must be positive"
)
