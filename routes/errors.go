package routes

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a route id is not registered.
var ErrNotFound = errors.New("route not found")

// DuplicateRouteError reports two entries sharing a path.
type DuplicateRouteError struct {
	Path   string
	First  ID
	Second ID
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("duplicate route path %q: %s and %s", e.Path, e.First, e.Second)
}

// DuplicateIDError reports an id registered twice.
type DuplicateIDError struct {
	ID   ID
	Path string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate route id %s (first registered at %q)", e.ID, e.Path)
}

// InvalidRouteError reports an entry with missing or malformed fields.
type InvalidRouteError struct {
	ID  ID
	Err error
}

func (e *InvalidRouteError) Error() string {
	return fmt.Sprintf("invalid route %q: %v", e.ID, e.Err)
}

func (e *InvalidRouteError) Unwrap() error {
	return e.Err
}
