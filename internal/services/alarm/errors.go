package alarm

// AlarmError is a custom error type for alarm errors
type AlarmError string

// Error implements the error interface
func (e AlarmError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    AlarmError = "config cannot be nil"
	ErrNilGuildRepo AlarmError = "guild repository cannot be nil"
	ErrNilSender    AlarmError = "sender cannot be nil"
	ErrNilInput     AlarmError = "input cannot be nil"
)
