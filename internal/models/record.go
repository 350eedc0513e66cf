package models

import "time"

// DataRecord is one timestamped unit of market data flowing through a
// pipeline.
type DataRecord interface {
	// Symbol returns the identity of the instrument this record belongs to.
	Symbol() Symbol

	// Time returns the record's end time in the exchange-local zone.
	Time() time.Time

	// WithSymbol returns a copy of the record carrying sym as its identity.
	// Every other field is preserved and the receiver is left untouched, so
	// the same record may keep serving readers that expect the original
	// identity.
	WithSymbol(sym Symbol) DataRecord
}

// TradeBar is a single OHLCV bar.
type TradeBar struct {
	Sym     Symbol
	EndTime time.Time
	Open    float64
	High    float64
	Low     float64
	Close   float64
	Volume  float64
}

func (b *TradeBar) Symbol() Symbol { return b.Sym }

func (b *TradeBar) Time() time.Time { return b.EndTime }

// WithSymbol returns a shallow copy of the bar under a rewritten identity.
func (b *TradeBar) WithSymbol(sym Symbol) DataRecord {
	clone := *b
	clone.Sym = sym
	return &clone
}
