package app

import (
	"context"
	"fmt"
	"reflect"
)

// Handler is the unit of logic bound to exactly one request type. The Result
// carries every expected business outcome; the error return is reserved for
// infrastructure faults and propagates to the transport layer untouched.
type Handler[Req any, Res any] interface {
	Handle(ctx context.Context, req Req) (Result[Res], error)
}

// Mediator routes a request value to the single handler registered for its
// type, running the validation gate first. Registration is an explicit table
// built once at startup; there is no runtime discovery.
type Mediator struct {
	gate     *gate
	handlers map[reflect.Type]any
}

// NewMediator creates an empty mediator.
func NewMediator() *Mediator {
	return &Mediator{
		gate:     newGate(),
		handlers: make(map[reflect.Type]any),
	}
}

// Register binds h as the one handler for Req. Registering a second handler
// for the same request type is a wiring bug and returns an error.
func Register[Req any, Res any](m *Mediator, h Handler[Req, Res]) error {
	t := reflect.TypeOf((*Req)(nil)).Elem()
	if _, exists := m.handlers[t]; exists {
		return fmt.Errorf("handler already registered for %s", t)
	}
	m.handlers[t] = h
	return nil
}

// MustRegister is Register for bootstrap code where a duplicate registration
// should abort startup.
func MustRegister[Req any, Res any](m *Mediator, h Handler[Req, Res]) {
	if err := Register(m, h); err != nil {
		panic(err)
	}
}

// Send dispatches req through the pipeline: resolve the handler, run the
// validation gate, and either short-circuit with a failure result or invoke
// the handler. Handlers never observe a request that failed validation.
func Send[Req any, Res any](ctx context.Context, m *Mediator, req Req) (Result[Res], error) {
	t := reflect.TypeOf((*Req)(nil)).Elem()
	registered, ok := m.handlers[t]
	if !ok {
		return Result[Res]{}, fmt.Errorf("no handler registered for %s", t)
	}
	h, ok := registered.(Handler[Req, Res])
	if !ok {
		return Result[Res]{}, fmt.Errorf("handler for %s has mismatched response type", t)
	}

	violations, err := m.gate.check(req)
	if err != nil {
		return Result[Res]{}, err
	}
	if len(violations) > 0 {
		return FailAll[Res](violations), nil
	}

	return h.Handle(ctx, req)
}
