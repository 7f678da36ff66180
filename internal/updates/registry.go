package updates

import (
	"fmt"
	"os"
	"sync"
)

// Registry scans a directory for update artifacts on one channel and tracks
// which of them is current.
//
// The cache is keyed by filename and never evicts: an entry whose backing
// file disappeared stays in the cache, so it grows monotonically with the set
// of filenames ever seen. Every scan re-stats each matching file; an entry
// whose mtime and size are unchanged keeps its object, and with it any hash
// already computed.
type Registry struct {
	directory string
	channel   Channel

	mu      sync.Mutex
	cache   map[string]*Update
	current *Update
}

// NewRegistry builds a registry for directory and performs the initial scan.
// A directory holding zero matching updates is a configuration error, not a
// condition to serve around.
func NewRegistry(directory string, ch Channel) (*Registry, error) {
	r := &Registry{
		directory: directory,
		channel:   ch,
		cache:     make(map[string]*Update),
	}
	if err := r.Scan(); err != nil {
		return nil, err
	}
	if r.Current() == nil {
		return nil, fmt.Errorf("no updates found in %s", directory)
	}
	return r, nil
}

// Scan refreshes the cache from the directory and recomputes the current
// update. Safe for concurrent use. When the directory cannot be listed the
// cache and current pointer keep their previous state, so callers can go on
// serving last-known-good data.
func (r *Registry) Scan() error {
	entries, err := os.ReadDir(r.directory)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", r.directory, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !r.channel.Matches(name) {
			continue
		}
		u, err := newUpdate(r.directory, name, r.channel)
		if err != nil {
			// Listed but gone by stat time; keep whatever we knew about it.
			continue
		}
		if prev, ok := r.cache[name]; ok && prev.ModTime.Equal(u.ModTime) && prev.Size == u.Size {
			continue
		}
		r.cache[name] = u
	}

	r.current = nil
	for _, u := range r.cache {
		if r.current == nil || newer(u, r.current) {
			r.current = u
		}
	}
	return nil
}

// newer reports whether a should win over b as the current update. Ties on
// modification time go to the lexicographically greatest filename so the
// outcome does not depend on directory listing order.
func newer(a, b *Update) bool {
	if !a.ModTime.Equal(b.ModTime) {
		return a.ModTime.After(b.ModTime)
	}
	return a.Filename > b.Filename
}

// Current returns the update with the greatest modification time seen so
// far, or nil when the cache is empty.
func (r *Registry) Current() *Update {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Directory returns the watched directory.
func (r *Registry) Directory() string {
	return r.directory
}
