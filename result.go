package glob

import "sort"

// Kind classifies a matched path.
type Kind int

const (
	// File is any entry that is not a directory.
	File Kind = iota
	// Dir is a directory.
	Dir
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Dir:
		return "dir"
	default:
		return "unknown"
	}
}

// Matches maps a "/"-joined path, relative to the root the glob was run
// against, to the kind of entry found there. Iteration order is not
// significant; use Paths for a stable listing.
type Matches map[string]Kind

// Paths returns the matched paths in lexical order.
func (m Matches) Paths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Files returns the matched paths of kind File in lexical order.
func (m Matches) Files() []string {
	return m.ofKind(File)
}

// Dirs returns the matched paths of kind Dir in lexical order.
func (m Matches) Dirs() []string {
	return m.ofKind(Dir)
}

func (m Matches) ofKind(k Kind) []string {
	var paths []string
	for p, kind := range m {
		if kind == k {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}
