// Package syncer fans a refresh out across every entity collection. It is
// the glue between selection changes and the per-context reloads.
package syncer

import (
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"
)

// Collection is an entity store that can re-read itself from the platform.
type Collection interface {
	Refresh() error
}

// Syncer refreshes a named set of collections concurrently.
type Syncer struct {
	mu          sync.Mutex
	log         *slog.Logger
	collections map[string]Collection
	order       []string
}

func New() *Syncer {
	return &Syncer{
		log:         slog.Default().With("component", "syncer"),
		collections: make(map[string]Collection),
	}
}

// Register adds a collection under a stable name. Registration happens
// during wiring, before concurrent use.
func (s *Syncer) Register(name string, c Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.collections[name]; !exists {
		s.order = append(s.order, name)
	}
	s.collections[name] = c
}

// RefreshAll reloads every registered collection concurrently and waits for
// all of them. Failures are logged per collection; the first error is
// returned so callers can surface a retry.
func (s *Syncer) RefreshAll() error {
	s.mu.Lock()
	names := make([]string, len(s.order))
	copy(names, s.order)
	targets := make(map[string]Collection, len(s.collections))
	for k, v := range s.collections {
		targets[k] = v
	}
	s.mu.Unlock()

	var (
		errMu sync.Mutex
		first error
	)
	var wg conc.WaitGroup
	for _, name := range names {
		name := name
		c := targets[name]
		wg.Go(func() {
			if err := c.Refresh(); err != nil {
				s.log.Warn("refresh failed", "collection", name, "error", err)
				errMu.Lock()
				if first == nil {
					first = err
				}
				errMu.Unlock()
			}
		})
	}
	wg.Wait()
	return first
}
