// Package feed builds composed streaming pipelines over raw historical
// market data: one raw reader per subscription, wrapped by the external
// corporate-action adjustment stage and, for continuous contracts, an
// identity remap. Advisory diagnostics from all readers are aggregated and
// reported once at factory teardown.
package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/epeers/datafeed/internal/cache"
	"github.com/epeers/datafeed/internal/models"
	"github.com/epeers/datafeed/internal/stream"
	"github.com/epeers/datafeed/internal/util"
)

// Params collects the collaborators a PipelineFactory wires into every
// pipeline it builds.
type Params struct {
	Readers     ReaderFactory
	Adjuster    AdjustmentBuilder
	Maps        MapProvider
	FactorFiles FactorFileProvider
	Data        DataProvider

	// Sink receives out-of-band reports. LogSink when nil.
	Sink ResultSink

	// TradableDays overrides the per-request tradable-day enumeration for
	// every pipeline. When nil each request's own enumeration applies.
	TradableDays func(req *models.SubscriptionRequest) []time.Time

	// Cache is the shared resource handed to every reader. A fresh
	// MemoryCache when nil. The factory owns it either way and releases it
	// at Close.
	Cache cache.Provider

	// WarningCap bounds each warning category. DefaultWarningCap when zero.
	WarningCap int
}

// PipelineFactory builds one composed record stream per subscription request:
// a raw reader, the corporate-action adjustment, and for continuous-contract
// subscriptions an identity remap as the outermost stage. Advisory
// diagnostics raised by the readers are batched in a WarningAggregator and
// reported once when the factory is closed.
//
// A factory may be used from multiple goroutines. Close must not run while
// pipelines are still being consumed; the caller serializes that.
type PipelineFactory struct {
	p        Params
	cache    cache.Provider
	warnings *WarningAggregator

	closeOnce sync.Once
}

// NewPipelineFactory creates a factory around the given collaborators. Each
// independent run should get its own factory so warning counters from one run
// never bleed into another.
func NewPipelineFactory(p Params) *PipelineFactory {
	if p.Sink == nil {
		p.Sink = LogSink{}
	}
	shared := p.Cache
	if shared == nil {
		shared = cache.NewMemoryCache()
	}
	return &PipelineFactory{
		p:        p,
		cache:    shared,
		warnings: NewWarningAggregator(p.WarningCap),
	}
}

// CreatePipeline builds the composed stream for one request. The returned
// stream is owned by the caller, who must Close it when done; closing it
// releases the underlying reader.
func (f *PipelineFactory) CreatePipeline(req *models.SubscriptionRequest) (stream.DataStream, error) {
	id := uuid.NewString()
	log.Debugf("[%s] building %s %s pipeline for %s", id, req.Config.Resolution, req.Config.DataType, req.Security.Ticker)

	var resolver MapResolver = NoMapResolver{}
	if req.Config.TickerShouldBeMapped {
		r, err := f.p.Maps.Get(req.Security.Market)
		if err != nil {
			return nil, fmt.Errorf("failed to get map resolver for market %s: %w", req.Security.Market, err)
		}
		resolver = r
	}

	reader, err := f.p.Readers(ReaderParams{
		Security:     req.Security,
		Config:       req.Config,
		StartLocal:   req.StartTimeLocal,
		EndLocal:     req.EndTimeLocal,
		Resolver:     resolver,
		FactorFiles:  f.p.FactorFiles,
		TradableDays: f.tradableDays(req),
		Live:         false,
		Cache:        f.cache,
		Data:         f.p.Data,
	})
	if err != nil {
		f.p.Sink.Error(fmt.Sprintf("[%s] failed to construct reader for %s: %v", id, req.Security.Ticker, err))
		return nil, fmt.Errorf("failed to construct reader for %s: %w", req.Security.Ticker, err)
	}

	f.subscribeDiagnostics(id, reader)

	adjusted := f.p.Adjuster(AdjustmentParams{
		Source:         reader,
		Context:        reader,
		Config:         req.Config,
		FactorFiles:    f.p.FactorFiles,
		Resolver:       resolver,
		StartLocal:     req.StartTimeLocal,
		ScalingEnabled: true,
	})

	if req.Security.IsContinuous() {
		return stream.NewContinuousRemap(adjusted, req.Security), nil
	}
	return adjusted, nil
}

// CreatePipelines builds one pipeline per request concurrently, preserving
// input order. On the first failure every already-built stream is closed and
// the error returned.
func (f *PipelineFactory) CreatePipelines(ctx context.Context, reqs []*models.SubscriptionRequest) ([]stream.DataStream, error) {
	streams := make([]stream.DataStream, len(reqs))

	g, _ := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			s, err := f.CreatePipeline(req)
			if err != nil {
				return err
			}
			streams[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, s := range streams {
			if s != nil {
				_ = s.Close()
			}
		}
		return nil, err
	}
	return streams, nil
}

// subscribeDiagnostics wires the reader's five diagnostic channels: fatal
// kinds go straight to the sink, advisory kinds into the aggregator.
func (f *PipelineFactory) subscribeDiagnostics(id string, reader RawReader) {
	reader.Subscribe(DiagInvalidConfiguration, func(d Diagnostic) {
		f.p.Sink.Error(fmt.Sprintf("[%s] %s", id, d.Message))
	})
	reader.Subscribe(DiagStartDateLimited, func(d Diagnostic) {
		f.warnings.Record(WarnStartDateLimited, d.Symbol, d.Message)
	})
	reader.Subscribe(DiagDownloadFailed, func(d Diagnostic) {
		f.p.Sink.ErrorDetail(fmt.Sprintf("[%s] %s", id, d.Message), d.Detail)
	})
	reader.Subscribe(DiagReaderError, func(d Diagnostic) {
		f.p.Sink.RuntimeError(fmt.Sprintf("[%s] %s", id, d.Message), d.Detail)
	})
	reader.Subscribe(DiagNumericalPrecisionLimited, func(d Diagnostic) {
		f.warnings.Record(WarnNumericalPrecision, d.Symbol, d.Message)
	})
}

func (f *PipelineFactory) tradableDays(req *models.SubscriptionRequest) []time.Time {
	if f.p.TradableDays != nil {
		return f.p.TradableDays(req)
	}
	if req.TradableDays != nil {
		return req.TradableDays()
	}
	return util.TradableDays(req.Security.Market, req.StartTimeLocal, req.EndTimeLocal)
}

// Close reports both aggregated warning categories through the sink and
// releases the shared cache. Expected to run once, after every pipeline has
// been consumed or abandoned; extra calls are no-ops.
func (f *PipelineFactory) Close() error {
	f.closeOnce.Do(func() {
		if report, ok := f.warnings.Flush(WarnStartDateLimited); ok {
			f.p.Sink.Debug(report)
		}
		if report, ok := f.warnings.Flush(WarnNumericalPrecision); ok {
			f.p.Sink.Debug(report)
		}
		if err := f.cache.Close(); err != nil {
			// Teardown runs on shutdown paths; a failed cache release must
			// not mask the run's outcome.
			log.Debugf("cache release failed during teardown: %v", err)
		}
	})
	return nil
}
