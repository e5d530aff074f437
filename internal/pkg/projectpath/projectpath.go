// Package projectpath locates the repository root at build time. Root is the
// source checkout the binary was compiled from, so .env resolves for `go run`
// and tests; a binary deployed elsewhere falls back to the process environment.
package projectpath

import (
	"path/filepath"
	"runtime"
)

var (
	_, b, _, _ = runtime.Caller(0)

	// Root folder of this project
	Root = filepath.Join(filepath.Dir(b), "../../..")
)
