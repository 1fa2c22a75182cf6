package glob

import "strings"

// JoinPath joins the non-empty pieces with "/". Empty pieces are skipped, so
// JoinPath("", "a", "", "b") == "a/b" and JoinPath() == "".
func JoinPath(pieces ...string) string {
	var b strings.Builder
	for _, p := range pieces {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('/')
		}
		b.WriteString(p)
	}
	return b.String()
}

// splitPortions splits a path on "/" and drops the empty portions produced
// by leading, trailing or repeated separators.
func splitPortions(path string) []string {
	raw := strings.Split(path, "/")
	out := raw[:0]
	for _, p := range raw {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// hasMeta reports whether s contains any glob metacharacter.
func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}
