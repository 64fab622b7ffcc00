package mocks

import "quickcourt/infras/otel"

type scope struct {
	parent *Otel
}

func (s *scope) End() {}

func (s *scope) AddEvent(_ string) {}

func (s *scope) SetAttribute(_ string, _ any) {}

func (s *scope) SetAttributes(_ map[string]any) {}

func (s *scope) TraceError(err error) {
	if s.parent != nil {
		s.parent.record(err)
	}
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

// NewScope returns a scope that belongs to no tracer.
func NewScope() otel.Scope {
	return &scope{}
}
