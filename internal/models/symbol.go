package models

import "strings"

// ContinuousContractMarker suffixes the display ticker of a continuous-contract
// subscription (e.g. "ES#"). Records read for such a subscription carry the
// identity of whichever physical contract they came from until the feed remaps
// them.
const ContinuousContractMarker = "#"

// Symbol identifies a tradable instrument. ID is the permanent identifier and
// carries equality: two symbols name the same instrument exactly when their
// IDs match, even if the display ticker has been renamed since.
type Symbol struct {
	ID     string
	Ticker string
	Market string
}

// NewSymbol creates a Symbol for ticker on market, using the ticker itself as
// the permanent identifier. Callers with a real identifier database should
// build the struct directly.
func NewSymbol(ticker, market string) Symbol {
	return Symbol{ID: ticker, Ticker: ticker, Market: market}
}

// Equal reports whether both symbols identify the same instrument.
func (s Symbol) Equal(other Symbol) bool {
	return s.ID == other.ID
}

// IsContinuous reports whether the display ticker carries the
// continuous-contract marker.
func (s Symbol) IsContinuous() bool {
	return strings.HasSuffix(s.Ticker, ContinuousContractMarker)
}

func (s Symbol) String() string {
	return s.Ticker
}
