// Package mocks provides a tracer for tests. It exports nothing and keeps
// the span names and traced errors so tests can inspect them.
package mocks

import (
	"context"
	"slices"
	"sync"

	"quickcourt/infras/otel"
)

type Otel struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.spans = append(o.spans, spanName)
	o.mu.Unlock()

	return ctx, &scope{parent: o}
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Spans lists the span names opened so far, in order.
func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.spans)
}

// Errors lists every error passed to TraceError or a non-nil TraceIfError.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.errors)
}

func (o *Otel) record(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.errors = append(o.errors, err)
}
