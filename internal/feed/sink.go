package feed

import (
	log "github.com/sirupsen/logrus"
)

// ResultSink receives out-of-band reports raised while pipelines are built
// and consumed. Calls are fire-and-forget: implementations must not panic and
// have nothing useful to return.
type ResultSink interface {
	Error(text string)
	ErrorDetail(text, detail string)
	RuntimeError(text, detail string)
	Debug(text string)
}

// LogSink reports through logrus. It is the sink a factory uses when the
// caller supplies none.
type LogSink struct{}

func (LogSink) Error(text string) {
	log.Error(text)
}

func (LogSink) ErrorDetail(text, detail string) {
	log.Errorf("%s: %s", text, detail)
}

func (LogSink) RuntimeError(text, detail string) {
	log.Errorf("runtime error: %s: %s", text, detail)
}

func (LogSink) Debug(text string) {
	log.Debug(text)
}
