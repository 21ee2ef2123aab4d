// SPDX-License-Identifier: MIT

// Command gsokit runs the orthogonalization engine and the exact kernels on
// matrices stored in YAML files.
//
// Usage:
//
//	gsokit gso basis.yaml
//	gsokit qr --format yaml basis.yaml
//	gsokit gram --exact lattice.yaml
//	gsokit covolume lattice.yaml
//	gsokit rref system.yaml
//	gsokit inverse square.yaml
//
// A matrix file holds one key, rows, with one sequence per row. Entries may be
// integers, decimals or fractions ("1/2").
//
// Exit status: 0 success, 1 error, 2 a kernel precondition was violated.
package main

import (
	"io"
	"os"
)

const (
	exitOK    = 0
	exitError = 1
	exitPanic = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit status.
// Kernels panic on shape violations; those panics stop here.
func run(args []string, stdout, stderr io.Writer) (code int) {
	a := newApp(stdout, stderr)
	defer func() {
		if rec := recover(); rec != nil {
			ev := a.log.Error()
			if err, ok := rec.(error); ok {
				ev = ev.Err(err)
			} else {
				ev = ev.Interface("panic", rec)
			}
			ev.Msg("precondition violated")
			code = exitPanic
		}
	}()

	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.log.Error().Err(err).Msg("command failed")
		return exitError
	}

	return exitOK
}
