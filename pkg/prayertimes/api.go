package prayertimes

import "sync"

var (
	defaultEngineOnce sync.Once
	defaultEngine     *Engine
)

// DefaultEngine returns the package-level Engine used by the one-shot
// convenience functions below. It is lazily constructed on first use.
// Per §5, an Engine has no internal synchronization: call the
// package-level functions from a single goroutine, or construct a private
// Engine with NewEngine per goroutine instead.
func DefaultEngine() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}

// Compute runs cfg against the package-level default Engine, per §6
// interface 1.
func Compute(cfg Configuration) Output {
	return DefaultEngine().Compute(cfg)
}

// NewDefaultContext pins base against the package-level default Engine, per §6
// interface 2.
func NewDefaultContext(base Configuration) *Context {
	return NewContext(DefaultEngine(), base)
}

// ClearCache empties the package-level default Engine's caches, per §6
// interface 5.
func ClearCache() {
	DefaultEngine().ClearCache()
}
