package ledger

import "fmt"

// PersistenceError reports a storage failure. A failed write leaves the
// ledger exactly as it was before the operation.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist ledger %s (key %s): %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// DeserializationError describes stored data that Load discarded. It is
// never returned by Load; it is logged and exposed through LoadError.
type DeserializationError struct {
	Key   string
	Bytes int
	Err   error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decode ledger (key %s, %d bytes): %v", e.Key, e.Bytes, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
