// Package di provides a minimal service container with typed tokens.
// Factories are lazy and memoized; registration happens at startup, reads
// are concurrent-safe afterward.
package di

import (
	"fmt"
	"sync"
)

// ServiceRegistry is the read side of the container.
type ServiceRegistry interface {
	// Get returns the service registered under name, invoking and memoizing
	// its factory on first access. Panics if the name is unknown.
	Get(name string) any
}

// Container is the write side, used during module registration.
type Container interface {
	ServiceRegistry
	// Register stores an already-constructed service.
	Register(name string, svc any)
	// RegisterFactory stores a lazy constructor for the service.
	RegisterFactory(name string, factory func(ServiceRegistry) any)
}

// NewContainer creates an empty container.
func NewContainer() Container {
	return &container{
		services:  make(map[string]any),
		factories: make(map[string]func(ServiceRegistry) any),
	}
}

type container struct {
	services  map[string]any
	factories map[string]func(ServiceRegistry) any
	mu        sync.Mutex
}

func (c *container) Register(name string, svc any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[name] = svc
}

func (c *container) RegisterFactory(name string, factory func(ServiceRegistry) any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.factories[name] = factory
}

func (c *container) Get(name string) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	if svc, ok := c.services[name]; ok {
		return svc
	}
	factory, ok := c.factories[name]
	if !ok {
		panic(fmt.Sprintf("di: service %q not registered", name))
	}

	// Memoize so factories run once. The lock is held across construction;
	// factories resolve their own dependencies through the unexported
	// lookup to avoid self-deadlock.
	svc := factory(&registryView{c})
	c.services[name] = svc
	return svc
}

// registryView exposes Get without re-locking the parent container.
type registryView struct {
	c *container
}

func (v *registryView) Get(name string) any {
	if svc, ok := v.c.services[name]; ok {
		return svc
	}
	factory, ok := v.c.factories[name]
	if !ok {
		panic(fmt.Sprintf("di: service %q not registered", name))
	}
	svc := factory(v)
	v.c.services[name] = svc
	return svc
}

// Token is a typed service name.
type Token[T any] struct {
	name string
}

// NewToken creates a typed token for the given service name.
func NewToken[T any](name string) Token[T] {
	return Token[T]{name: name}
}

// Name returns the token's registry name.
func (t Token[T]) Name() string {
	return t.name
}

// RegisterToken registers a typed factory under the token's name.
func RegisterToken[T any](c Container, t Token[T], factory func(ServiceRegistry) T) {
	c.RegisterFactory(t.name, func(sr ServiceRegistry) any {
		return factory(sr)
	})
}

// GetToken resolves a token to its typed service.
func GetToken[T any](sr ServiceRegistry, t Token[T]) T {
	return sr.Get(t.name).(T)
}
