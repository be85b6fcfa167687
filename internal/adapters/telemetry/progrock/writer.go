package progrock

import (
	"fmt"

	"github.com/vito/progrock"
	"go.trai.ch/lambdazip/internal/core/ports"
)

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer that reports completed vertices to a logger
// at debug level and forwards every update to next.
type LogWriter struct {
	logger ports.Logger
	next   progrock.Writer
}

// NewLogWriter creates a LogWriter. next may be nil.
func NewLogWriter(logger ports.Logger, next progrock.Writer) *LogWriter {
	return &LogWriter{logger: logger, next: next}
}

// WriteStatus logs each vertex of update that has completed.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	for _, v := range update.GetVertexes() {
		if v.GetCompleted() == nil {
			continue
		}
		took := v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime())
		if e := v.GetError(); e != "" {
			w.logger.Debug(fmt.Sprintf("step %q failed after %s: %s", v.GetName(), took, e))
			continue
		}
		w.logger.Debug(fmt.Sprintf("step %q finished in %s", v.GetName(), took))
	}

	if w.next != nil {
		return w.next.WriteStatus(update)
	}
	return nil
}

// Close closes next.
func (w *LogWriter) Close() error {
	if w.next != nil {
		return w.next.Close()
	}
	return nil
}
