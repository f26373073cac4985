package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by repositories when an id does not exist.
// Service methods wrap it into a *NotFoundError with the id attached.
var ErrNotFound = errors.New("poster not found")

// ValidationError reports every missing required field of a create
// request at once so the client can fix them in one round trip.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// NotFoundError reports an update/delete against a nonexistent poster.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("poster %s not found", e.ID)
}
