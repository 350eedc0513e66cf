package feed

import (
	"io"
	"time"

	"github.com/epeers/datafeed/internal/cache"
	"github.com/epeers/datafeed/internal/models"
	"github.com/epeers/datafeed/internal/stream"
)

// MapResolver resolves historical ticker renames for one market: given a
// symbol and a trading date, it returns the ticker the instrument traded
// under on that date.
type MapResolver interface {
	Resolve(sym models.Symbol, date time.Time) string
}

// NoMapResolver is the resolver used when a subscription's ticker has no
// rename history. It always answers with the symbol's current ticker.
type NoMapResolver struct{}

func (NoMapResolver) Resolve(sym models.Symbol, _ time.Time) string {
	return sym.Ticker
}

// MapProvider looks up the map resolver for a market. Get may block on I/O.
type MapProvider interface {
	Get(market string) (MapResolver, error)
}

// FactorFileProvider hands per-symbol corporate-action adjustment data to the
// stages that need it. The factory passes it through untouched and never
// interprets it.
type FactorFileProvider interface{}

// DataProvider serves on-demand fetches of raw payloads a reader finds
// missing from the cache.
type DataProvider interface {
	Fetch(key string) (io.ReadCloser, error)
}

// RawReader parses raw stored data into typed records and raises diagnostics
// while doing so. Implementations are external collaborators; the feed only
// composes around them.
type RawReader interface {
	stream.DataStream

	// Subscribe registers fn for kind. Registration happens once, at
	// pipeline construction, before the stream is consumed.
	Subscribe(kind DiagnosticKind, fn DiagnosticHandler)
}

// ReaderParams carries everything a raw reader needs for one subscription.
type ReaderParams struct {
	Security     models.Symbol
	Config       models.SubscriptionConfig
	StartLocal   time.Time
	EndLocal     time.Time
	Resolver     MapResolver
	FactorFiles  FactorFileProvider
	TradableDays []time.Time
	Live         bool
	Cache        cache.Provider
	Data         DataProvider
}

// ReaderFactory constructs the raw reader for one subscription.
type ReaderFactory func(p ReaderParams) (RawReader, error)

// AdjustmentParams carries what the corporate-action stage needs. Source and
// Context are the same reader handed over twice: once as the record stream to
// wrap and once so the stage can reach the reader's factor-file state.
type AdjustmentParams struct {
	Source         stream.DataStream
	Context        RawReader
	Config         models.SubscriptionConfig
	FactorFiles    FactorFileProvider
	Resolver       MapResolver
	StartLocal     time.Time
	ScalingEnabled bool
}

// AdjustmentBuilder composes the corporate-action stage(s) around a reader
// and returns the adjusted stream.
type AdjustmentBuilder func(p AdjustmentParams) stream.DataStream
