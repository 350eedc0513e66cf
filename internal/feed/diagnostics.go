package feed

import "github.com/epeers/datafeed/internal/models"

// DiagnosticKind enumerates the out-of-band channels a raw reader exposes.
// A factory registers one handler per kind when it constructs the reader.
type DiagnosticKind int

const (
	// DiagInvalidConfiguration reports a subscription the reader cannot
	// serve. Always surfaced immediately.
	DiagInvalidConfiguration DiagnosticKind = iota

	// DiagStartDateLimited reports that data only exists from a later date
	// than the subscription asked for. Aggregated per symbol.
	DiagStartDateLimited

	// DiagDownloadFailed reports a failed on-demand fetch. Always surfaced
	// immediately.
	DiagDownloadFailed

	// DiagReaderError reports a runtime failure inside the reader. Always
	// surfaced immediately.
	DiagReaderError

	// DiagNumericalPrecisionLimited reports that price adjustment lost
	// precision at the requested resolution. Aggregated per symbol.
	DiagNumericalPrecisionLimited
)

// Diagnostic is one event raised by a raw reader while its stream is
// consumed. Detail is only populated for kinds that carry one.
type Diagnostic struct {
	Symbol  models.Symbol
	Message string
	Detail  string
}

// DiagnosticHandler consumes one diagnostic event. Handlers run on the
// reader's consuming goroutine and must not block or panic.
type DiagnosticHandler func(d Diagnostic)
