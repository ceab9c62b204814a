package cartsnapshot

import "context"

// Repository is a key-value store of cart snapshots keyed by session ID.
// It satisfies cart.Persister.
type Repository interface {
	Save(ctx context.Context, sessionID string, snapshot []byte) error
	Load(ctx context.Context, sessionID string) ([]byte, error)
}
