package mocks

import (
	"context"

	"rental/infras/otel"
)

type otelImpl struct {
	recorder *Recorder
}

func (o *otelImpl) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	return ctx, &scopeImpl{recorder: o.recorder, span: spanName}
}

func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

// NewOtel returns a tracer that records nothing.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

// NewRecording returns a tracer whose spans report into recorder.
func NewRecording() (otel.Otel, *Recorder) {
	recorder := &Recorder{
		Attributes: map[string]any{},
		Errors:     map[string][]error{},
	}

	return &otelImpl{recorder: recorder}, recorder
}
