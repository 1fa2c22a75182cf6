package glob

import (
	"fmt"
	"path"
	"sort"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
)

// PathType selects a filesystem namespace. Its value is opaque to the
// walker and only forwarded to the FileSystem.
type PathType string

// FileSystem is everything the walker needs from the outside world. Paths
// are "/"-joined and relative to root, which is itself relative to the
// namespace selected by pt.
type FileSystem interface {
	// List returns the names of the immediate children of dir, split into
	// files and directories. ok is false when dir cannot be listed; the
	// walker treats that as an empty directory.
	List(root, dir string, pt PathType) (files, dirs []string, ok bool)
	// Exists reports whether anything exists at p.
	Exists(root, p string, pt PathType) bool
	// IsDir reports whether p is a directory. Only meaningful when Exists
	// is true.
	IsDir(root, p string, pt PathType) bool
}

// Namespaces is a FileSystem backed by one afero.Fs per PathType.
// It is safe for concurrent use.
type Namespaces struct {
	mu     sync.RWMutex
	mounts map[PathType]afero.Fs
	logger log.Logger
}

var _ FileSystem = (*Namespaces)(nil)

// NewNamespaces returns an empty set of namespaces. A nil logger discards
// everything.
func NewNamespaces(logger log.Logger) *Namespaces {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Namespaces{
		mounts: make(map[PathType]afero.Fs),
		logger: logger,
	}
}

// Mount binds pt to fsys, replacing any previous binding.
func (n *Namespaces) Mount(pt PathType, fsys afero.Fs) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mounts[pt] = fsys
}

// MountDir binds pt to a directory of the host filesystem. Paths can not
// escape dir.
func (n *Namespaces) MountDir(pt PathType, dir string) error {
	ok, err := afero.DirExists(afero.NewOsFs(), dir)
	if err != nil {
		return fmt.Errorf("glob: mount %s: %w", pt, err)
	}
	if !ok {
		return fmt.Errorf("glob: mount %s: %q is not a directory", pt, dir)
	}
	n.Mount(pt, afero.NewBasePathFs(afero.NewOsFs(), dir))
	return nil
}

// Lookup returns the filesystem bound to pt.
func (n *Namespaces) Lookup(pt PathType) (afero.Fs, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	fsys, ok := n.mounts[pt]
	return fsys, ok
}

// Types returns the mounted path types in lexical order.
func (n *Namespaces) Types() []PathType {
	n.mu.RLock()
	defer n.mu.RUnlock()
	types := make([]PathType, 0, len(n.mounts))
	for pt := range n.mounts {
		types = append(types, pt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// List implements FileSystem. Names come back in lexical order.
func (n *Namespaces) List(root, dir string, pt PathType) (files, dirs []string, ok bool) {
	fsys, found := n.Lookup(pt)
	if !found {
		level.Debug(n.logger).Log("msg", "unknown path type", "type", pt)
		return nil, nil, false
	}

	name := fsPath(root, dir)
	infos, err := afero.ReadDir(fsys, name)
	if err != nil {
		level.Debug(n.logger).Log("msg", "cannot list directory", "type", pt, "path", name, "err", err)
		return nil, nil, false
	}
	for _, fi := range infos {
		if fi.IsDir() {
			dirs = append(dirs, fi.Name())
		} else {
			files = append(files, fi.Name())
		}
	}
	return files, dirs, true
}

// Exists implements FileSystem.
func (n *Namespaces) Exists(root, p string, pt PathType) bool {
	fsys, found := n.Lookup(pt)
	if !found {
		return false
	}
	ok, err := afero.Exists(fsys, fsPath(root, p))
	if err != nil {
		level.Debug(n.logger).Log("msg", "cannot stat path", "type", pt, "path", fsPath(root, p), "err", err)
		return false
	}
	return ok
}

// IsDir implements FileSystem.
func (n *Namespaces) IsDir(root, p string, pt PathType) bool {
	fsys, found := n.Lookup(pt)
	if !found {
		return false
	}
	ok, err := afero.IsDir(fsys, fsPath(root, p))
	return err == nil && ok
}

// fsPath resolves root and rel to the absolute name used inside a namespace.
func fsPath(root, rel string) string {
	return path.Clean("/" + JoinPath(root, rel))
}
