package glob

import (
	"runtime"
	"strings"
	"sync"
)

// Match reports whether path, a "/"-joined path relative to the point the
// pattern is anchored at, matches the whole pattern. No filesystem access
// is involved.
//
// Leading, trailing and repeated slashes in path are ignored, as they are
// in the pattern itself.
func (p *Pattern) Match(path string) bool {
	return p.full.MatchString(JoinPath(splitPortions(path)...))
}

// MatchDir is Match for a directory path. A trailing "/" is accepted and
// dropped; the result is the same as Match on the trimmed path.
func (p *Pattern) MatchDir(path string) bool {
	return p.Match(strings.TrimSuffix(path, "/"))
}

// Filter returns the paths from the input slice that match the pattern, in
// input order. A trailing "/" on a path is dropped before matching.
func (p *Pattern) Filter(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	return p.filterChunk(paths)
}

func (p *Pattern) filterChunk(paths []string) []string {
	var kept []string
	for _, path := range paths {
		if p.MatchDir(path) {
			kept = append(kept, path)
		}
	}
	return kept
}

// FilterParallel returns the same result as Filter, splitting the input into
// runtime.NumCPU() chunks that are matched concurrently and merged in order.
//
// For small path lists (< 10k), the goroutine overhead may exceed the
// savings. Use Filter for small lists.
func (p *Pattern) FilterParallel(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}
	if numWorkers <= 1 {
		return p.Filter(paths)
	}

	chunkSize := (len(paths) + numWorkers - 1) / numWorkers
	var chunks [][]string
	for i := 0; i < len(paths); i += chunkSize {
		end := i + chunkSize
		if end > len(paths) {
			end = len(paths)
		}
		chunks = append(chunks, paths[i:end])
	}

	results := make([][]string, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i := range chunks {
		go func(idx int) {
			defer wg.Done()
			results[idx] = p.filterChunk(chunks[idx])
		}(i)
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	if total == 0 {
		return nil
	}
	merged := make([]string, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}
