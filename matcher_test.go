package glob

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Match — single path
// ---------------------------------------------------------------------------

func TestMatchStarExtension(t *testing.T) {
	p := MustCompile("*.log")

	tests := []struct {
		path string
		want bool
	}{
		{"debug.log", true},
		{"error.log", true},
		{".log", true},
		{"app.txt", false},
		{"src/debug.log", false},
	}
	for _, tc := range tests {
		if got := p.Match(tc.path); got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestMatchDoublestar(t *testing.T) {
	p := MustCompile("a/**/b")

	tests := []struct {
		path string
		want bool
	}{
		{"a/b", true},
		{"a/x/b", true},
		{"a/x/y/b", true},
		{"a/x\ny/b", true},
		{"a/xb", false},
		{"a/x/yb", false},
		{"b", false},
		{"a/b/c", false},
	}
	for _, tc := range tests {
		if got := p.Match(tc.path); got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestMatchLeadingDoublestar(t *testing.T) {
	p := MustCompile("**/logs")

	for _, path := range []string{"logs", "a/logs", "a/b/logs"} {
		if !p.Match(path) {
			t.Errorf("Match(%q) should be true", path)
		}
	}
	if p.Match("mylogs") {
		t.Error("**/ must not swallow part of a name")
	}
}

func TestMatchTrailingDoublestar(t *testing.T) {
	p := MustCompile("src/**")

	for _, path := range []string{"src/a", "src/a/b", "src/a/b/c.go"} {
		if !p.Match(path) {
			t.Errorf("Match(%q) should be true", path)
		}
	}
	if p.Match("srcx/a") {
		t.Error("src/** should not match srcx/a")
	}
}

func TestMatchQuestionMark(t *testing.T) {
	p := MustCompile("debug?.log")

	if !p.Match("debug0.log") {
		t.Error("? should match single character")
	}
	if p.Match("debug.log") {
		t.Error("? should not match zero characters")
	}
	if p.Match("debug10.log") {
		t.Error("? should not match two characters")
	}
	if MustCompile("a?b").Match("a/b") {
		t.Error("? should not match a separator")
	}
}

func TestMatchIsCaseSensitive(t *testing.T) {
	p := MustCompile("Thumbs.db")
	if !p.Match("Thumbs.db") {
		t.Error("should match Thumbs.db")
	}
	if p.Match("thumbs.db") {
		t.Error("matching is case sensitive")
	}
}

func TestMatchLiteralMetaCharacters(t *testing.T) {
	p := MustCompile("lib/c++/*.h")
	if !p.Match("lib/c++/vector.h") {
		t.Error("'+' in a literal portion should match itself")
	}
	if p.Match("lib/cc/vector.h") {
		t.Error("'+' must not act as a repetition")
	}
}

func TestMatchDir(t *testing.T) {
	p := MustCompile("build/*")
	if !p.MatchDir("build/out/") {
		t.Error("trailing slash should be accepted")
	}
	if !p.MatchDir("build/out") {
		t.Error("plain directory path should match")
	}
}

// ---------------------------------------------------------------------------
// Filter
// ---------------------------------------------------------------------------

func TestFilterBasic(t *testing.T) {
	p := MustCompile("**/*.go")

	got := p.Filter([]string{
		"main.go",
		"README.md",
		"internal/x/y.go",
		"docs/",
		"cmd/tool/main.go",
	})
	want := []string{"main.go", "internal/x/y.go", "cmd/tool/main.go"}

	assertStringSliceEqual(t, got, want)
}

func TestFilterDirectoryPaths(t *testing.T) {
	p := MustCompile("build")

	got := p.Filter([]string{"build/", "build", "src/build"})
	want := []string{"build/", "build"}

	assertStringSliceEqual(t, got, want)
}

func TestFilterEmptyInput(t *testing.T) {
	p := MustCompile("*.log")

	if got := p.Filter([]string{}); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := p.Filter([]string{"a.txt"}); got != nil {
		t.Errorf("expected nil when nothing matches, got %v", got)
	}
}

// ---------------------------------------------------------------------------
// FilterParallel
// ---------------------------------------------------------------------------

func TestFilterParallelEmpty(t *testing.T) {
	p := MustCompile("*.log")

	if got := p.FilterParallel([]string{}); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestFilterParallelPreservesOrder(t *testing.T) {
	p := MustCompile("*.log")

	// Enough paths to actually trigger multiple workers.
	numPaths := runtime.NumCPU() * 100
	paths := make([]string, numPaths)
	var want []string
	for i := 0; i < numPaths; i++ {
		if i%5 == 0 {
			paths[i] = fmt.Sprintf("file_%04d.log", i)
			want = append(want, paths[i])
		} else {
			paths[i] = fmt.Sprintf("file_%04d.txt", i)
		}
	}

	assertStringSliceEqual(t, p.FilterParallel(paths), want)
}

func TestFilterParallelMatchesFilter(t *testing.T) {
	p := MustCompile("dir_*/**/[!x]*.log")

	numPaths := runtime.NumCPU() * 200
	paths := make([]string, numPaths)
	for i := 0; i < numPaths; i++ {
		switch i % 5 {
		case 0:
			paths[i] = fmt.Sprintf("dir_%d/file.log", i)
		case 1:
			paths[i] = fmt.Sprintf("dir_%d/a/b/xfile.log", i)
		case 2:
			paths[i] = fmt.Sprintf("dir_%d/a/b/file.log", i)
		case 3:
			paths[i] = fmt.Sprintf("other_%d/file.log", i)
		default:
			paths[i] = fmt.Sprintf("dir_%d/file_%d.rs", i, i)
		}
	}

	assertStringSliceEqual(t, p.FilterParallel(paths), p.Filter(paths))
}

func TestConcurrentMatch(t *testing.T) {
	const goroutines = 20

	p := MustCompile("**/*.pattern")

	var wg sync.WaitGroup
	wg.Add(goroutines)
	errors := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()

			matchPath := fmt.Sprintf("d%d/file.pattern", id)
			noMatchPath := fmt.Sprintf("d%d/file.other", id)

			if !p.Match(matchPath) {
				errors <- fmt.Errorf("goroutine %d: expected %q to match", id, matchPath)
				return
			}
			if p.Match(noMatchPath) {
				errors <- fmt.Errorf("goroutine %d: expected %q to NOT match", id, noMatchPath)
				return
			}
			for _, kept := range p.Filter([]string{matchPath, noMatchPath}) {
				if !strings.HasSuffix(kept, ".pattern") {
					errors <- fmt.Errorf("goroutine %d: Filter kept %q", id, kept)
					return
				}
			}
		}(i)
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Error(err)
	}
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Compile("src/**/module[0-9]/*.lua"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatchSingle(b *testing.B) {
	p := MustCompile("src/**/*.go")
	for i := 0; i < b.N; i++ {
		p.Match("src/deeply/nested/path/main.go")
	}
}

func BenchmarkFilter10000(b *testing.B) {
	p := MustCompile("**/*.log")
	paths := make([]string, 10000)
	for i := range paths {
		if i%4 == 0 {
			paths[i] = fmt.Sprintf("dir/file_%d.log", i)
		} else {
			paths[i] = fmt.Sprintf("dir/file_%d.rs", i)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Filter(paths)
	}
}

func BenchmarkFilterParallel10000(b *testing.B) {
	p := MustCompile("**/*.log")
	paths := make([]string, 10000)
	for i := range paths {
		if i%4 == 0 {
			paths[i] = fmt.Sprintf("dir/file_%d.log", i)
		} else {
			paths[i] = fmt.Sprintf("dir/file_%d.rs", i)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.FilterParallel(paths)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func assertStringSliceEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("length mismatch: got %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q\nfull got:  %v\nfull want: %v", i, got[i], want[i], got, want)
			return
		}
	}
}
