package must

import (
	"log/slog"
	"os"
)

// Assert exits the process when an invariant of the static data does not hold.
func Assert(cond bool, failMessage string, args ...any) {
	if !cond {
		slog.Error(failMessage, args...)
		os.Exit(1)
	}
}
