package guild

import "errors"

// GuildError is a custom error type for guild configuration errors
type GuildError string

// Error implements the error interface
func (e GuildError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    GuildError = "config cannot be nil"
	ErrNilGuildRepo GuildError = "guild repository cannot be nil"
	ErrNilInput     GuildError = "input cannot be nil"

	// Invalid input errors are shown to the command issuer
	ErrInvalidGuild   GuildError = "this command can only be used in a server"
	ErrInvalidChannel GuildError = "a valid channel is required"
	ErrEmptyGame      GuildError = "a game name is required"
)

// IsInvalidInput reports whether err was caused by bad command input
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidGuild) ||
		errors.Is(err, ErrInvalidChannel) ||
		errors.Is(err, ErrEmptyGame)
}
