package judgment

// JudgmentError is a custom error type for judgment errors
type JudgmentError string

// Error implements the error interface
func (e JudgmentError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      JudgmentError = "config cannot be nil"
	ErrNilSessionRepo JudgmentError = "session repository cannot be nil"
	ErrNilClock       JudgmentError = "clock cannot be nil"
	ErrNilInput       JudgmentError = "input cannot be nil"
	ErrInvalidUserID  JudgmentError = "user ID must be positive"
)
