// SPDX-License-Identifier: MPL-2.0

package target

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// ErrNotRegistered is the sentinel wrapped by all resolve failures, so
// callers can match any "target missing" condition with errors.Is.
var ErrNotRegistered = errors.New("target not registered")

// HTTPFunc is the signature of a bare HTTP-triggered entrypoint function.
type HTTPFunc func(w http.ResponseWriter, r *http.Request)

type (
	// Registry maps dotted paths to invocable targets. The zero value is not
	// usable; construct with NewRegistry. A process normally uses the package
	// Default registry; tests build private instances.
	Registry struct {
		mu         sync.RWMutex
		containers map[string]*container
	}

	// container groups the members registered under one container name, so
	// resolve failures can distinguish "no such container" from "container
	// exists but has no such member".
	container struct {
		apps   map[string]http.Handler
		funcs  map[string]HTTPFunc
		events map[string]EventFunc
	}
)

var defaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{containers: make(map[string]*container)}
}

// Default returns the process-wide registry that the shipped commands
// resolve against.
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) container(name string) *container {
	c, ok := r.containers[name]
	if !ok {
		c = &container{
			apps:   make(map[string]http.Handler),
			funcs:  make(map[string]HTTPFunc),
			events: make(map[string]EventFunc),
		}
		r.containers[name] = c
	}
	return c
}

// RegisterApp binds an HTTP application (any http.Handler, typically a
// router) to the given dotted path. Invalid paths and duplicate
// registrations panic: both are build-time wiring bugs in the hosting
// binary, not runtime conditions.
func (r *Registry) RegisterApp(path string, app http.Handler) {
	ref := mustParseRef(path)
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.container(ref.Container)
	if _, dup := c.apps[ref.Member]; dup {
		panic(fmt.Sprintf("target: app %q registered twice", path))
	}
	c.apps[ref.Member] = app
}

// RegisterFunc binds a bare HTTP entrypoint function to the given dotted path.
func (r *Registry) RegisterFunc(path string, fn HTTPFunc) {
	ref := mustParseRef(path)
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.container(ref.Container)
	if _, dup := c.funcs[ref.Member]; dup {
		panic(fmt.Sprintf("target: func %q registered twice", path))
	}
	c.funcs[ref.Member] = fn
}

// RegisterEvent binds a message-triggered entrypoint to the given dotted path.
func (r *Registry) RegisterEvent(path string, fn EventFunc) {
	ref := mustParseRef(path)
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.container(ref.Container)
	if _, dup := c.events[ref.Member]; dup {
		panic(fmt.Sprintf("target: event %q registered twice", path))
	}
	c.events[ref.Member] = fn
}

// ResolveApp looks up the HTTP application registered under path.
func (r *Registry) ResolveApp(path string) (http.Handler, error) {
	ref, err := ParseRef(path)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.containers[ref.Container]
	if !ok {
		return nil, r.unknownContainer(ref)
	}
	app, ok := c.apps[ref.Member]
	if !ok {
		return nil, unknownMember(ref, "app")
	}
	return app, nil
}

// ResolveFunc looks up the bare HTTP entrypoint registered under path.
func (r *Registry) ResolveFunc(path string) (HTTPFunc, error) {
	ref, err := ParseRef(path)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.containers[ref.Container]
	if !ok {
		return nil, r.unknownContainer(ref)
	}
	fn, ok := c.funcs[ref.Member]
	if !ok {
		return nil, unknownMember(ref, "func")
	}
	return fn, nil
}

// ResolveEvent looks up the message entrypoint registered under path.
func (r *Registry) ResolveEvent(path string) (EventFunc, error) {
	ref, err := ParseRef(path)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.containers[ref.Container]
	if !ok {
		return nil, r.unknownContainer(ref)
	}
	fn, ok := c.events[ref.Member]
	if !ok {
		return nil, unknownMember(ref, "event")
	}
	return fn, nil
}

// unknownContainer reports a missing container, listing the ones that exist
// to make typos easy to spot. Callers must hold at least a read lock.
func (r *Registry) unknownContainer(ref Ref) error {
	known := make([]string, 0, len(r.containers))
	for name := range r.containers {
		known = append(known, name)
	}
	if len(known) == 0 {
		return fmt.Errorf("%w: no container %q (nothing is registered)", ErrNotRegistered, ref.Container)
	}
	return fmt.Errorf("%w: no container %q (registered containers: %v)", ErrNotRegistered, ref.Container, known)
}

func unknownMember(ref Ref, kind string) error {
	return fmt.Errorf("%w: container %q has no %s member %q", ErrNotRegistered, ref.Container, kind, ref.Member)
}

func mustParseRef(path string) Ref {
	ref, err := ParseRef(path)
	if err != nil {
		panic("target: " + err.Error())
	}
	return ref
}

// RegisterApp binds an HTTP application on the Default registry.
func RegisterApp(path string, app http.Handler) { defaultRegistry.RegisterApp(path, app) }

// RegisterFunc binds a bare HTTP entrypoint on the Default registry.
func RegisterFunc(path string, fn HTTPFunc) { defaultRegistry.RegisterFunc(path, fn) }

// RegisterEvent binds a message entrypoint on the Default registry.
func RegisterEvent(path string, fn EventFunc) { defaultRegistry.RegisterEvent(path, fn) }
