// Package glob finds files and directories matching shell-style glob
// patterns beneath a root, inside a namespace of a pluggable filesystem.
//
// A pattern is compiled into a chain of segments. Literal portions are
// resolved with a single existence check; wildcard portions list one
// directory; a "**" portion scans the whole subtree below it. The walker
// only ever calls the three methods of FileSystem, so any backend can be
// plugged in. Namespaces provides one backed by afero, with one afero.Fs
// per PathType.
//
// # Quick Start
//
//	ns := glob.NewNamespaces(nil)
//	if err := ns.MountDir("GAME", "/srv/game"); err != nil {
//	    log.Fatal(err)
//	}
//
//	g := glob.New(ns)
//	matches, err := g.Glob("GAME", "**/*.lua", "my-addon/config")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range matches.Paths() {
//	    fmt.Println(p, matches[p]) // module1/else.lua file ...
//	}
//
// A compiled Pattern can also be matched against plain strings:
//
//	p := glob.MustCompile("src/**/*.go")
//	p.Match("src/a/b/main.go")                        // true
//	p.Filter([]string{"src/x.go", "docs/readme.md"}) // [src/x.go]
//
// # Pattern Syntax
//
//   - "*" matches any sequence of non-separator characters
//   - "?" matches any single non-separator character
//   - "[abc]" or "[a-z]" matches character classes; "[!abc]" and "[^abc]"
//     negate, and a "]" right after the opening bracket is a member
//   - "**" matches any sequence of characters including separators, and
//     must be a whole portion: "a/**/b" is valid, "a**" is not
//   - Empty portions (leading, trailing or repeated "/") are ignored
//   - There is no escape character and no case folding
//
// # Concurrency
//
// Compiled patterns are immutable. A Globber keeps no state between calls;
// each Glob call owns its segment chain and result set, so concurrent calls
// are safe as long as the FileSystem is. Namespaces is.
package glob
