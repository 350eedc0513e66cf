package stream

import "github.com/epeers/datafeed/internal/models"

// SliceStream replays an in-memory slice of records. It is the natural
// adapter for pre-loaded data and the building block test doubles are made
// from. A nil element in the slice is exposed as a gap slot.
type SliceStream struct {
	records []models.DataRecord
	pos     int
	current models.DataRecord
}

// NewSliceStream creates a stream over records in order.
func NewSliceStream(records ...models.DataRecord) *SliceStream {
	return &SliceStream{records: records}
}

func (s *SliceStream) Next() bool {
	if s.pos >= len(s.records) {
		s.current = nil
		return false
	}
	s.current = s.records[s.pos]
	s.pos++
	return true
}

func (s *SliceStream) Current() models.DataRecord {
	return s.current
}

// Reset rewinds the stream to its first record.
func (s *SliceStream) Reset() {
	s.pos = 0
	s.current = nil
}

func (s *SliceStream) Close() error {
	s.current = nil
	s.pos = len(s.records)
	return nil
}
