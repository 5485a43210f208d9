package store

type noopStore struct{}

// NewNoopStore returns a [SessionStore] that persists nothing. It backs the
// ephemeral mode where the session lives only for the duration of the
// process.
func NewNoopStore() SessionStore {
	return noopStore{}
}

func (noopStore) Get(string) ([]byte, bool) { return nil, false }

func (noopStore) Set(string, []byte) {}

func (noopStore) Remove(string) {}
