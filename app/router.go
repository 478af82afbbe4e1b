package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// ErrUnknownOperation is returned when no handler is registered for the
// kind of an operation.
var ErrUnknownOperation = errors.Register(1000, "unknown operation")

var isRoute = regexp.MustCompile(`^[a-z0-9_]+$`).MatchString

// Handler executes a single operation.
type Handler interface {
	Deliver(info bazaar.BlockInfo, db bazaar.KVStore, op Operation) (*Result, error)
}

// HandlerFunc is an adapter to use a function as a Handler.
type HandlerFunc func(info bazaar.BlockInfo, db bazaar.KVStore, op Operation) (*Result, error)

func (fn HandlerFunc) Deliver(info bazaar.BlockInfo, db bazaar.KVStore, op Operation) (*Result, error) {
	return fn(info, db, op)
}

// Router dispatches operations to handlers by their kind.
type Router struct {
	routes map[string]Handler
}

// NewRouter returns a router without any routes.
func NewRouter() *Router {
	return &Router{routes: make(map[string]Handler)}
}

// Handle registers the handler for given operation kind. Registering a
// kind twice or using an invalid name panics.
func (r *Router) Handle(kind string, h Handler) {
	if !isRoute(kind) {
		panic(fmt.Sprintf("invalid operation kind %q", kind))
	}
	if _, ok := r.routes[kind]; ok {
		panic(fmt.Sprintf("re-registering operation kind %q", kind))
	}
	r.routes[kind] = h
}

// Handler returns the handler for given operation kind.
func (r *Router) Handler(kind string) (Handler, error) {
	h, ok := r.routes[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOperation, "%q", kind)
	}
	return h, nil
}
