// Package cache provides the shared store pipelines read raw payloads
// through. One Provider is created per factory and handed to every reader the
// factory builds; the factory alone releases it.
package cache

// Provider is the shared cache resource. Implementations must tolerate
// concurrent readers from multiple pipelines.
type Provider interface {
	// Fetch returns the payload stored under key, if any.
	Fetch(key string) ([]byte, bool)

	// Store caches a payload under key.
	Store(key string, data []byte)

	// Close releases the resource. Close after Close is a no-op.
	Close() error
}
