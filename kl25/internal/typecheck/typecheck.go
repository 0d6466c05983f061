// Package typecheck loads packages from source and collects their errors.
// Tests use it to show that a misuse of the HAL fails to compile.
package typecheck

import (
	"os/exec"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const mode = packages.NeedName | packages.NeedFiles | packages.NeedImports |
	packages.NeedDeps | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

// Errors type-checks the package matched by pattern, relative to the test's
// working directory, and returns every error message from it and its
// dependencies.
func Errors(t testing.TB, pattern string) []string {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
	pkgs, err := packages.Load(&packages.Config{Mode: mode}, pattern)
	if err != nil {
		t.Fatalf("load %s: %v", pattern, err)
	}
	if len(pkgs) == 0 {
		t.Fatalf("load %s: no packages", pattern)
	}
	var msgs []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			msgs = append(msgs, e.Msg)
		}
	})
	return msgs
}

// Rejects fails t unless pattern has an error containing every fragment.
func Rejects(t testing.TB, pattern string, fragments ...string) {
	t.Helper()
	msgs := Errors(t, pattern)
	for _, m := range msgs {
		if containsAll(m, fragments) {
			return
		}
	}
	t.Fatalf("%s: no error mentions %q; got %q", pattern, fragments, msgs)
}

// Accepts fails t if pattern has any error.
func Accepts(t testing.TB, pattern string) {
	t.Helper()
	if msgs := Errors(t, pattern); len(msgs) != 0 {
		t.Fatalf("%s: unexpected errors %q", pattern, msgs)
	}
}

func containsAll(s string, frags []string) bool {
	for _, f := range frags {
		if !strings.Contains(s, f) {
			return false
		}
	}
	return true
}
