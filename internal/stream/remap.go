package stream

import "github.com/epeers/datafeed/internal/models"

// ContinuousRemap rewrites the identity of every record flowing through it to
// a fixed continuous-contract symbol. Upstream records are cloned before the
// rewrite, never mutated: the underlying contract data may still be read by
// consumers that expect the physical contract's own identity.
//
// ContinuousRemap must be the outermost stage of a pipeline so the consumer
// only ever sees the logical identity.
type ContinuousRemap struct {
	source  DataStream
	target  models.Symbol
	current models.DataRecord
}

// NewContinuousRemap wraps source, presenting every record under target.
func NewContinuousRemap(source DataStream, target models.Symbol) *ContinuousRemap {
	return &ContinuousRemap{source: source, target: target}
}

func (r *ContinuousRemap) Next() bool {
	if !r.source.Next() {
		r.current = nil
		return false
	}
	rec := r.source.Current()
	if rec == nil {
		// Upstream advanced onto a gap. Pass the slot through unset.
		r.current = nil
		return true
	}
	r.current = rec.WithSymbol(r.target)
	return true
}

func (r *ContinuousRemap) Current() models.DataRecord {
	return r.current
}

// Reset rewinds the upstream stream when it supports rewinding.
func (r *ContinuousRemap) Reset() {
	if rs, ok := r.source.(Resettable); ok {
		rs.Reset()
	}
	r.current = nil
}

// Close releases the upstream stream.
func (r *ContinuousRemap) Close() error {
	r.current = nil
	return r.source.Close()
}
