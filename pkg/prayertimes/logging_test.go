package prayertimes

import (
	"testing"

	"go.uber.org/zap"
)

func TestWithLoggerOption(t *testing.T) {
	logger := zap.NewNop().Sugar()
	e := NewEngine(WithLogger(logger))
	if e.logger != logger {
		t.Errorf("expected WithLogger to wire the provided logger")
	}
}

func TestWithLoggerNilIsIgnored(t *testing.T) {
	e := NewEngine(WithLogger(nil))
	if _, ok := e.logger.(nopLogger); !ok {
		t.Errorf("expected a nil logger to leave the default nopLogger in place")
	}
}

func TestNewEngineDefaultsToNopLogger(t *testing.T) {
	e := NewEngine()
	if _, ok := e.logger.(nopLogger); !ok {
		t.Errorf("expected NewEngine() to default to nopLogger")
	}
}
