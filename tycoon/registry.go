package tycoon

import "sync"

// Registry hands out one Client per name. The first Get for a name builds
// the client; concurrent first calls still produce a single instance.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*Client
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*Client)}
}

// Get returns the client registered under name, creating it with opts when
// absent. opts are ignored once the client exists.
func (r *Registry) Get(name string, opts ...Option) (*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[name]; ok {
		return c, nil
	}

	c, err := New(opts...)
	if err != nil {
		return nil, err
	}

	r.clients[name] = c
	return c, nil
}

func (r *Registry) Lookup(name string) (*Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[name]
	return c, ok
}

func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clients, name)
}
