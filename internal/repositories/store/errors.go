package store

// StoreError is a custom error type for store errors
type StoreError string

// Error implements the error interface
func (e StoreError) Error() string {
	return string(e)
}

const (
	ErrCommit       StoreError = "store commit failed"
	ErrReadOnly     StoreError = "write attempted in read-only transaction"
	ErrUnknownMap   StoreError = "unknown map"
	ErrCorruptValue StoreError = "corrupt stored value"
	ErrClosed       StoreError = "store is closed"
)
