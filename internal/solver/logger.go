package solver

// Logger receives search progress. Implementations must be safe to call
// from the goroutine running the search.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(format string, v ...any) {}
func (NopLogger) Infof(format string, v ...any)  {}
