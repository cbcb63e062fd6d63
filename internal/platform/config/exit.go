package config

import (
	"fmt"
	"io"
	"os"
)

// exit is swapped in tests.
var exit = os.Exit

// Fatal reports err for the named tool on stderr and exits with status 1.
func Fatal(tool string, err error) {
	writeFatal(os.Stderr, tool, err)
	exit(1)
}

func writeFatal(w io.Writer, tool string, err error) {
	if err == nil {
		fmt.Fprintf(w, "%s: failed\n", tool)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", tool, err)
}
