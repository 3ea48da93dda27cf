package aspen

import (
	"fmt"
	"os"
)

// tracefn writes classification diagnostics to stderr when enabled. The main
// call sites are the click-vs-drag ambiguity checks in the classifier.
type tracefn bool

func (t tracefn) printf(format string, args ...any) {
	if !t {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[aspen] "+format+"\n", args...)
}
