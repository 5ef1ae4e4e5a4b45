package domain

// Slot is the durable mirror: a named key-value entry holding the
// serialized task list. Writes are last-writer-wins.
type Slot interface {
	// Get returns ok=false when nothing has been stored under key.
	Get(key string) (data []byte, ok bool, err error)
	Set(key string, data []byte) error
}
