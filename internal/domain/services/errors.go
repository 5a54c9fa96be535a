package services

import "fmt"

// CollaboratorError wraps a failure from an external collaborator (raw-text
// provider, persistent store, cache). It aborts the operation that hit it;
// no retries happen at this layer.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator failure in %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

func collaboratorErr(op string, err error) error {
	return &CollaboratorError{Op: op, Err: err}
}
