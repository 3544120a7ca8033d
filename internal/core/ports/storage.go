package ports

import "context"

// SnapshotStore is the durable key-value persistence layer shared by the
// stores. Values are JSON-serializable snapshots stored under fixed
// namespace keys; each store owns a disjoint namespace and never contends.
type SnapshotStore interface {
	// Save serializes value and stores it under key, replacing any prior snapshot.
	Save(ctx context.Context, key string, value any) error
	// Load deserializes the snapshot under key into dest. The boolean reports
	// whether a snapshot existed; a missing key is not an error.
	Load(ctx context.Context, key string, dest any) (bool, error)
	// Delete removes the snapshot under key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}
