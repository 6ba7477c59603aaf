package main

import "fmt"

// StepError wraps a failure with the migration operation that raised it.
// Every component boundary (transform, compile, import, plan log,
// orchestrator step) wraps exactly once; nothing in the core recovers.
type StepError struct {
	Op  string
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// stepErr wraps err with the operation name, or returns nil if err is nil.
func stepErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Op: op, Err: err}
}

// stepErrf builds a StepError from a formatted message with no cause chain.
func stepErrf(op, format string, args ...any) error {
	return &StepError{Op: op, Err: fmt.Errorf(format, args...)}
}
