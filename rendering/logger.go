package rendering

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var (
	loggerPtr atomic.Pointer[slog.Logger]
	// approxWarned is reset by SetLogger so a newly installed logger sees
	// the synthetic-sample warning once.
	approxWarned atomic.Bool
)

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs the logger used by the rendering pipelines. Pass nil to
// restore the silent default.
//
// Levels:
//   - [slog.LevelDebug]: CCT, Duv and reference illuminant per evaluation
//   - [slog.LevelWarn]: synthetic TLCI/TM-30 samples (once per logger)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
	approxWarned.Store(false)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func warnApproximation(metric string) {
	if approxWarned.CompareAndSwap(false, true) {
		Logger().Warn("color samples are synthetic approximations; scores are not official",
			slog.String("metric", metric))
	}
}
