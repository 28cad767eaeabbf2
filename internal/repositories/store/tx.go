package store

import (
	"fmt"
	"strconv"
)

// BucketResolver returns the bucket backing a map for the current transaction
type BucketResolver func(name MapName) (Bucket, error)

type tx struct {
	resolve  BucketResolver
	writable bool
}

// NewTx builds the typed transaction view backends hand to callbacks
func NewTx(resolve BucketResolver, writable bool) Tx {
	return &tx{resolve: resolve, writable: writable}
}

func (t *tx) Int64s(name MapName) Map[int64] {
	return &typedMap[int64]{tx: t, name: name, codec: int64Codec{}}
}

func (t *tx) Strings(name MapName) Map[string] {
	return &typedMap[string]{tx: t, name: name, codec: stringCodec{}}
}

func (t *tx) Bools(name MapName) Map[bool] {
	return &typedMap[bool]{tx: t, name: name, codec: boolCodec{}}
}

// IsKnownMap reports whether name is part of the persisted layout
func IsKnownMap(name MapName) bool {
	for _, m := range Maps {
		if m == name {
			return true
		}
	}
	return false
}

type codec[V any] interface {
	encode(v V) []byte
	decode(data []byte) (V, error)
}

type typedMap[V any] struct {
	tx    *tx
	name  MapName
	codec codec[V]
}

func (m *typedMap[V]) bucket() (Bucket, error) {
	if !IsKnownMap(m.name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMap, m.name)
	}
	return m.tx.resolve(m.name)
}

func (m *typedMap[V]) Get(key int64) (V, bool, error) {
	var zero V
	b, err := m.bucket()
	if err != nil {
		return zero, false, err
	}
	data, err := b.Get(key)
	if err != nil {
		return zero, false, fmt.Errorf("failed to read %s[%d]: %w", m.name, key, err)
	}
	if data == nil {
		return zero, false, nil
	}
	v, err := m.codec.decode(data)
	if err != nil {
		return zero, false, fmt.Errorf("%s[%d]: %w", m.name, key, err)
	}
	return v, true, nil
}

func (m *typedMap[V]) GetOrDefault(key int64, def V) (V, error) {
	v, ok, err := m.Get(key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

func (m *typedMap[V]) Put(key int64, value V) error {
	if !m.tx.writable {
		return ErrReadOnly
	}
	b, err := m.bucket()
	if err != nil {
		return err
	}
	if err := b.Put(key, m.codec.encode(value)); err != nil {
		return fmt.Errorf("failed to write %s[%d]: %w", m.name, key, err)
	}
	return nil
}

func (m *typedMap[V]) Remove(key int64) (V, bool, error) {
	var zero V
	if !m.tx.writable {
		return zero, false, ErrReadOnly
	}
	old, ok, err := m.Get(key)
	if err != nil || !ok {
		return zero, false, err
	}
	b, err := m.bucket()
	if err != nil {
		return zero, false, err
	}
	if err := b.Delete(key); err != nil {
		return zero, false, fmt.Errorf("failed to delete %s[%d]: %w", m.name, key, err)
	}
	return old, true, nil
}

func (m *typedMap[V]) Contains(key int64) (bool, error) {
	_, ok, err := m.Get(key)
	return ok, err
}

// Values are stored as plain text so both backends stay inspectable.

type int64Codec struct{}

func (int64Codec) encode(v int64) []byte {
	return []byte(strconv.FormatInt(v, 10))
}

func (int64Codec) decode(data []byte) (int64, error) {
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorruptValue, data)
	}
	return v, nil
}

type stringCodec struct{}

func (stringCodec) encode(v string) []byte {
	return []byte(v)
}

func (stringCodec) decode(data []byte) (string, error) {
	return string(data), nil
}

type boolCodec struct{}

func (boolCodec) encode(v bool) []byte {
	if v {
		return []byte("1")
	}
	return []byte("0")
}

func (boolCodec) decode(data []byte) (bool, error) {
	switch string(data) {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrCorruptValue, data)
	}
}
