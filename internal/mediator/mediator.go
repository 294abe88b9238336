// AngelaMos | 2026
// mediator.go

// Package mediator routes each request value to the single handler
// registered for its type. Handlers are registered once at startup on a
// Registry; the built Dispatcher is read-only and safe for concurrent use.
package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrDuplicateHandler = errors.New("handler already registered")
	ErrMissingHandler   = errors.New("no handler registered")
	ErrResultType       = errors.New("handler result type mismatch")
)

type Handler[Q, R any] interface {
	Handle(ctx context.Context, req Q) (R, error)
}

type HandlerFunc[Q, R any] func(ctx context.Context, req Q) (R, error)

func (f HandlerFunc[Q, R]) Handle(ctx context.Context, req Q) (R, error) {
	return f(ctx, req)
}

type entry struct {
	handler any
	result  reflect.Type
}

// Observer is notified after each handled request with the request type
// and the handler's error.
type Observer func(ctx context.Context, req reflect.Type, err error)

type Registry struct {
	handlers  map[reflect.Type]entry
	observers []Observer
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[reflect.Type]entry)}
}

// Key identifies request type Q for Registry.Build.
func Key[Q any]() reflect.Type {
	return reflect.TypeFor[Q]()
}

func Register[Q, R any](reg *Registry, h Handler[Q, R]) error {
	key := Key[Q]()
	if _, ok := reg.handlers[key]; ok {
		return fmt.Errorf("register %s: %w", key, ErrDuplicateHandler)
	}

	reg.handlers[key] = entry{handler: h, result: reflect.TypeFor[R]()}
	return nil
}

func (reg *Registry) Observe(o Observer) {
	reg.observers = append(reg.observers, o)
}

// Build freezes the registry. Every type in required must have a handler.
func (reg *Registry) Build(required ...reflect.Type) (*Dispatcher, error) {
	var missing []error
	for _, key := range required {
		if _, ok := reg.handlers[key]; !ok {
			missing = append(missing, fmt.Errorf("%w for %s", ErrMissingHandler, key))
		}
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	handlers := make(map[reflect.Type]entry, len(reg.handlers))
	for k, v := range reg.handlers {
		handlers[k] = v
	}

	return &Dispatcher{
		handlers:  handlers,
		observers: append([]Observer(nil), reg.observers...),
	}, nil
}

type Dispatcher struct {
	handlers  map[reflect.Type]entry
	observers []Observer
}

// Send runs the handler for Q and returns its result and error unchanged.
func Send[Q, R any](ctx context.Context, d *Dispatcher, req Q) (R, error) {
	var zero R

	key := Key[Q]()
	e, ok := d.handlers[key]
	if !ok {
		return zero, fmt.Errorf("send %s: %w", key, ErrMissingHandler)
	}

	h, ok := e.handler.(Handler[Q, R])
	if !ok {
		return zero, fmt.Errorf(
			"send %s: %w: want %s, registered %s",
			key, ErrResultType, reflect.TypeFor[R](), e.result,
		)
	}

	res, err := h.Handle(ctx, req)
	for _, o := range d.observers {
		o(ctx, key, err)
	}

	return res, err
}
