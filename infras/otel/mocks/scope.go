package mocks

import (
	"sync"

	"rental/infras/otel"
)

type scopeImpl struct {
	recorder *Recorder
	span     string
}

func (s *scopeImpl) AddEvent(name string) {
	s.recorder.add(func(r *Recorder) { r.Events = append(r.Events, name) })
}

func (s *scopeImpl) End() {}

func (s *scopeImpl) SetAttribute(key string, value any) {
	s.recorder.add(func(r *Recorder) { r.Attributes[key] = value })
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *scopeImpl) TraceError(err error) {
	if err == nil {
		return
	}

	s.recorder.add(func(r *Recorder) { r.Errors[s.span] = append(r.Errors[s.span], err) })
}

func (s *scopeImpl) TraceIfError(err error) {
	s.TraceError(err)
}

// Recorder keeps what spans reported so tests can assert on it. A nil Recorder discards
// everything.
type Recorder struct {
	mu         sync.Mutex
	Events     []string
	Attributes map[string]any
	Errors     map[string][]error
}

func (r *Recorder) add(fn func(r *Recorder)) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	fn(r)
}

// Errored reports whether the named span recorded an error.
func (r *Recorder) Errored(span string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.Errors[span]) > 0
}

func NewScope() otel.Scope {
	return &scopeImpl{}
}
