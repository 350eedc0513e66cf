// Package stream defines the pull contract data records flow through and the
// decorator stages the feed composes around a raw reader.
package stream

import "github.com/epeers/datafeed/internal/models"

// DataStream is a pull-based stream of data records. Next blocks until a new
// slot is available or the stream is exhausted. Current is only meaningful
// after Next returned true and may be nil when the underlying reader produced
// a gap for the slot.
type DataStream interface {
	Next() bool
	Current() models.DataRecord

	// Close releases whatever the stream holds, the wrapped upstream
	// included. The consumer that received the stream owns this call.
	Close() error
}

// Resettable is implemented by streams that can rewind to their start.
type Resettable interface {
	Reset()
}
