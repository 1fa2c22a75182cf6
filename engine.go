package glob

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Globber resolves glob patterns against a FileSystem. It holds no state
// between calls and is safe for concurrent use when its FileSystem is.
type Globber struct {
	fs     FileSystem
	logger log.Logger
}

// Option configures a Globber.
type Option func(*Globber)

// WithLogger sets the logger used for debug output about pruned branches and
// finished walks. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(g *Globber) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New returns a Globber reading through fsys.
func New(fsys FileSystem, opts ...Option) *Globber {
	g := &Globber{
		fs:     fsys,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Glob returns every file and directory under root that matches pattern in
// the namespace selected by pt. An empty root is the namespace root.
//
// An empty pattern yields ErrInvalidInput and a malformed one a
// *PatternCompileError; both are reported before any filesystem access.
// Unreadable directories and missing paths only prune the walk, so a nil
// error does not mean every subtree was visited.
func (g *Globber) Glob(pt PathType, pattern, root string) (Matches, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidInput)
	}

	if !hasMeta(pattern) {
		return g.globLiteral(pt, pattern, root), nil
	}

	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return g.Walk(pt, p, root), nil
}

// Walk resolves an already compiled pattern under root.
func (g *Globber) Walk(pt PathType, p *Pattern, root string) Matches {
	w := &walker{
		fs:     g.fs,
		logger: g.logger,
		pt:     pt,
		root:   root,
		p:      p,
		out:    make(Matches),
	}
	if p.Len() > 0 {
		w.segment(0, "")
	}
	level.Debug(g.logger).Log("msg", "glob finished", "type", pt, "root", root, "pattern", p.String(), "matches", len(w.out))
	return w.out
}

// globLiteral handles patterns without metacharacters with a single
// existence check.
func (g *Globber) globLiteral(pt PathType, pattern, root string) Matches {
	out := make(Matches, 1)
	rel := JoinPath(splitPortions(pattern)...)
	if rel == "" {
		return out
	}
	if !g.fs.Exists(root, rel, pt) {
		level.Debug(g.logger).Log("msg", "literal path not found", "type", pt, "root", root, "path", rel)
		return out
	}
	out[rel] = kindOf(g.fs, root, rel, pt)
	return out
}

// walker carries the immutable context of one Walk call plus its result set.
type walker struct {
	fs     FileSystem
	logger log.Logger
	pt     PathType
	root   string
	p      *Pattern
	out    Matches
}

func (w *walker) segment(i int, rel string) {
	seg := &w.p.segments[i]
	next, hasNext := w.p.Next(i)

	switch {
	case seg.Kind == LiteralSegment:
		candidate := JoinPath(rel, seg.Value)
		if !w.fs.Exists(w.root, candidate, w.pt) {
			level.Debug(w.logger).Log("msg", "pruned missing path", "path", candidate)
			return
		}
		if hasNext {
			w.segment(next, candidate)
			return
		}
		w.out[candidate] = kindOf(w.fs, w.root, candidate, w.pt)

	case seg.Globstar:
		for sub, kind := range w.subtree(rel) {
			if seg.tail.MatchString(sub) {
				w.out[JoinPath(rel, sub)] = kind
			}
		}

	default:
		files, dirs, ok := w.fs.List(w.root, rel, w.pt)
		if !ok {
			level.Debug(w.logger).Log("msg", "pruned unlistable directory", "path", rel)
			return
		}
		if hasNext {
			for _, name := range dirs {
				if seg.re.MatchString(name) {
					w.segment(next, JoinPath(rel, name))
				}
			}
			return
		}
		for _, name := range files {
			if seg.re.MatchString(name) {
				w.out[JoinPath(rel, name)] = File
			}
		}
		for _, name := range dirs {
			if seg.re.MatchString(name) {
				w.out[JoinPath(rel, name)] = Dir
			}
		}
	}
}

// subtree lists every descendant of rel at any depth, keyed by its path
// relative to rel.
func (w *walker) subtree(rel string) map[string]Kind {
	out := make(map[string]Kind)
	w.scan(rel, "", out)
	return out
}

func (w *walker) scan(base, sub string, out map[string]Kind) {
	files, dirs, ok := w.fs.List(w.root, JoinPath(base, sub), w.pt)
	if !ok {
		return
	}
	for _, name := range files {
		out[JoinPath(sub, name)] = File
	}
	for _, name := range dirs {
		child := JoinPath(sub, name)
		out[child] = Dir
		w.scan(base, child, out)
	}
}

func kindOf(fsys FileSystem, root, rel string, pt PathType) Kind {
	if fsys.IsDir(root, rel, pt) {
		return Dir
	}
	return File
}
