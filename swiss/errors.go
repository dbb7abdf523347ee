/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// ValidationError indicates rejected input (duplicate name, empty name,
// invalid rating). The tournament is unchanged when one is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// SequenceError indicates an operation issued out of order, e.g. recording
// results for a round other than the next unrecorded one, pairing while
// results are outstanding, or undoing with nothing to undo. The tournament
// is unchanged when one is returned.
type SequenceError struct {
	Msg string
}

func (e *SequenceError) Error() string {
	return e.Msg
}

func sequenceErrf(format string, args ...any) error {
	return &SequenceError{Msg: fmt.Sprintf(format, args...)}
}

// DecodeError indicates a malformed persisted record. No partial tournament
// is constructed when one is returned.
type DecodeError struct {
	Msg string
}

func (e *DecodeError) Error() string {
	return e.Msg
}

func decodeErrf(format string, args ...any) error {
	return &DecodeError{Msg: fmt.Sprintf(format, args...)}
}
