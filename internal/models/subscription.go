package models

import "time"

// Resolution is the bar period a subscription is read at.
type Resolution int

const (
	ResolutionTick Resolution = iota
	ResolutionSecond
	ResolutionMinute
	ResolutionHour
	ResolutionDaily
)

func (r Resolution) String() string {
	switch r {
	case ResolutionTick:
		return "tick"
	case ResolutionSecond:
		return "second"
	case ResolutionMinute:
		return "minute"
	case ResolutionHour:
		return "hour"
	case ResolutionDaily:
		return "daily"
	default:
		return "unknown"
	}
}

// DataType is the record shape a subscription is read as.
type DataType int

const (
	DataTypeTradeBar DataType = iota
	DataTypeQuoteBar
	DataTypeTick
)

func (d DataType) String() string {
	switch d {
	case DataTypeTradeBar:
		return "tradebar"
	case DataTypeQuoteBar:
		return "quotebar"
	case DataTypeTick:
		return "tick"
	default:
		return "unknown"
	}
}

// SubscriptionConfig describes how a security's raw data should be read.
type SubscriptionConfig struct {
	Resolution Resolution
	DataType   DataType

	// TickerShouldBeMapped indicates the ticker has a rename history that a
	// market-scoped map resolver must be consulted for.
	TickerShouldBeMapped bool
}

// SubscriptionRequest describes one historical read. It is built by the
// caller and read-only to the feed.
type SubscriptionRequest struct {
	Security       Symbol
	Config         SubscriptionConfig
	StartTimeLocal time.Time
	EndTimeLocal   time.Time

	// TradableDays enumerates the calendar dates the read should cover.
	// When nil the factory falls back to the market's exchange calendar.
	TradableDays func() []time.Time
}
