package store

import "context"

// MapName identifies one of the independent durable maps. The names are part
// of the persisted layout and must never change.
type MapName string

const (
	// MapJudgment holds userID -> accumulated seconds over completed sessions
	MapJudgment MapName = "judgmentTracker"

	// MapCurrent holds userID -> start epoch seconds of the open session
	MapCurrent MapName = "currentTracker"

	// MapGuildGame holds guildID -> tracked activity name
	MapGuildGame MapName = "currentGameTracker"

	// MapAlarmPermissions holds guildID -> alarm armed flag
	MapAlarmPermissions MapName = "alarmPermissions"

	// MapAlarmChannels holds guildID -> alarm channel ID
	MapAlarmChannels MapName = "alarmChannels"
)

// Maps lists every map a backend must provide
var Maps = []MapName{
	MapJudgment,
	MapCurrent,
	MapGuildGame,
	MapAlarmPermissions,
	MapAlarmChannels,
}

// Store is a crash-consistent key-value store made of several typed maps.
// Mutations are only possible inside Update, and every mutation made by the
// callback is committed together once it returns nil.
type Store interface {
	// Update runs fn in a writable transaction and commits it when fn returns nil.
	// A commit failure is reported wrapped around ErrCommit. fn may run more
	// than once when a backend retries a conflicting commit.
	Update(ctx context.Context, fn func(tx Tx) error) error

	// View runs fn in a read-only transaction
	View(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying storage
	Close() error
}

// Tx gives access to the typed maps inside one transaction
type Tx interface {
	Int64s(name MapName) Map[int64]
	Strings(name MapName) Map[string]
	Bools(name MapName) Map[bool]
}

// Map is a typed view over one durable map keyed by platform identifiers.
// An absent key is never an error.
type Map[V any] interface {
	Get(key int64) (V, bool, error)
	GetOrDefault(key int64, def V) (V, error)
	Put(key int64, value V) error
	Remove(key int64) (V, bool, error)
	Contains(key int64) (bool, error)
}

// Bucket is the raw per-map storage a backend exposes to a transaction.
// Get returns a nil slice for absent keys.
type Bucket interface {
	Get(key int64) ([]byte, error)
	Put(key int64, value []byte) error
	Delete(key int64) error
}
