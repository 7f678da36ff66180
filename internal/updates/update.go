package updates

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Suffix is the file extension shared by update artifacts on every channel.
const Suffix = ".mar"

// Channel selects the filename convention for update artifacts. Channels
// differ only in the filename prefix; everything else about an update is the
// same regardless of channel.
type Channel struct {
	Name   string
	Prefix string
}

var (
	Nightly = Channel{Name: "nightly", Prefix: "b2g_update_"}
	Stable  = Channel{Name: "stable", Prefix: "b2g_stable_update_"}
)

// ChannelByName resolves a configuration value to one of the known channels.
func ChannelByName(name string) (Channel, error) {
	switch name {
	case Nightly.Name:
		return Nightly, nil
	case Stable.Name:
		return Stable, nil
	}
	return Channel{}, fmt.Errorf("unknown update channel %q", name)
}

// Matches reports whether filename follows the channel's naming convention.
func (ch Channel) Matches(filename string) bool {
	return strings.HasPrefix(filename, ch.Prefix) && strings.HasSuffix(filename, Suffix)
}

// Stamp extracts the version stamp from a filename that satisfies Matches:
// the prefix and suffix are stripped, nothing else. For every accepted
// filename, Prefix + Stamp(filename) + Suffix == filename.
func (ch Channel) Stamp(filename string) string {
	return strings.TrimSuffix(strings.TrimPrefix(filename, ch.Prefix), Suffix)
}

// Update represents one update artifact on disk. Directory, Filename, Stamp,
// ModTime and Size are fixed at construction; the content hash and companion
// metadata are resolved lazily on first use and memoized for the object's
// lifetime.
type Update struct {
	Directory string
	Filename  string
	Stamp     string
	ModTime   time.Time
	Size      int64

	// mu makes each lazy resolution happen at most once per object;
	// concurrent callers for the same file block instead of recomputing.
	mu   sync.Mutex
	hash string
	app  *Application
}

func newUpdate(directory, filename string, ch Channel) (*Update, error) {
	info, err := os.Stat(filepath.Join(directory, filename))
	if err != nil {
		return nil, err
	}
	return &Update{
		Directory: directory,
		Filename:  filename,
		Stamp:     ch.Stamp(filename),
		ModTime:   info.ModTime(),
		Size:      info.Size(),
	}, nil
}

// Path returns the artifact's location on disk.
func (u *Update) Path() string {
	return filepath.Join(u.Directory, u.Filename)
}

// Hash returns the hex SHA-512 digest of the artifact's content. The file is
// read once, on the first call; if it changes on disk afterwards the cached
// digest is stale until the next scan replaces this entry.
func (u *Update) Hash() (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.hash != "" {
		return u.hash, nil
	}
	f, err := os.Open(u.Path())
	if err != nil {
		return "", fmt.Errorf("hashing %s: %w", u.Filename, err)
	}
	defer f.Close()
	h := sha512.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", u.Filename, err)
	}
	u.hash = hex.EncodeToString(h.Sum(nil))
	return u.hash, nil
}

// Application returns the parsed companion application_<stamp>.ini. A missing
// or malformed companion means the deployed artifact set is broken; the error
// is propagated, never defaulted.
func (u *Update) Application() (*Application, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.app != nil {
		return u.app, nil
	}
	path := filepath.Join(u.Directory, fmt.Sprintf("application_%s.ini", u.Stamp))
	app, err := LoadApplication(path)
	if err != nil {
		return nil, err
	}
	u.app = app
	return u.app, nil
}
