// Package mirror owns the console's local copies of the upstream
// collections. Each fetcher is the sole mutator of its mirror: FetchAll
// replaces it wholesale, mutations patch it only after the upstream
// confirms, and failures leave the last-known-good state untouched.
//
// The browser original leaned on a single-threaded event loop for
// safety; under net/http every mirror carries its own RWMutex instead,
// and readers get copied snapshots.
package mirror

import (
	"errors"

	"github.com/academyhq/academy-console/backend"
)

// ErrNotInMirror means a mutation succeeded upstream but the id was never
// in the local mirror, or a patch targeted an id the mirror has not seen.
var ErrNotInMirror = errors.New("entity not present in local mirror")

func orDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

// failureMessage prefers the server's own explanation for 4xx rejections
// and falls back to a generic per-operation message otherwise, exactly
// how the browser app picked its toast text.
func failureMessage(err error, fallback string) string {
	var reqErr *backend.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
