package prayertimes

import "go.uber.org/zap"

// diagLogger is the narrow logging surface the kernel's boundary code uses.
// It is satisfied by *zap.SugaredLogger directly, so WithLogger accepts one
// without an adapter.
type diagLogger interface {
	Debugw(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...interface{}) {}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithLogger wires a *zap.SugaredLogger for boundary diagnostics: cache
// clears and high-latitude fallback activation. The hot compute path never
// logs, per §5's no-I/O, no-allocation contract.
func WithLogger(logger *zap.SugaredLogger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
