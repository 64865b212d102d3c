package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable covers transport-level failures: DNS, refused
	// connections, timeouts. The mirror keeps its last-known-good state.
	ErrUnreachable = errors.New("academy backend unreachable")

	// ErrSessionExpired is returned for any upstream 401, and also when a
	// request is attempted with no valid token. The session store has
	// already been torn down by the time the caller sees it.
	ErrSessionExpired = errors.New("session expired")

	// ErrServerFault covers upstream 5xx responses.
	ErrServerFault = errors.New("academy backend fault")
)

// RequestError is an upstream 4xx: user-correctable, with the server's
// own explanation when it gave one.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend rejected request (%d): %s", e.Status, e.Message)
}
