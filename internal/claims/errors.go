package claims

import (
	"errors"
	"fmt"
)

// ErrNotLoaded reports use of a repository before Load was called
var ErrNotLoaded = errors.New("claims not loaded")

// NotFoundError reports an id with no corresponding record
type NotFoundError struct {
	Kind string // "claim" or "section"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
