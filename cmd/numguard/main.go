// Command numguard checks decimal number strings against precision, scale
// and sign limits.
//
//	numguard [flags] [value...]
//
// Every argument is checked, or every stdin line when no arguments are
// given. Each verdict is printed as "value<TAB>valid" or
// "value<TAB>invalid<TAB>message". The exit code is 0 when every value is
// valid, 1 when any is invalid and 2 on usage or configuration errors.
// Negative values must follow "--" so they are not read as flags:
//
//	numguard -p 5 -s 2 -- -1.5 12.25
//
// With --serve the same validator is exposed over HTTP instead.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
