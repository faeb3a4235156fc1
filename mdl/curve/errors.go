// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "github.com/cpmech/gosl/io"

// ErrKind classifies errors raised while building or using saturation functions
type ErrKind int

const (
	InvalidTable   ErrKind = iota + 1 // non-monotone, out-of-domain or incomplete curve input
	ConfigMismatch                    // configuration inconsistent with the tables or the grid
	InvalidState                      // operation not allowed in the current state
	IndexError                        // out-of-range element index
)

// String returns the name of the kind
func (k ErrKind) String() string {
	switch k {
	case InvalidTable:
		return "invalid table"
	case ConfigMismatch:
		return "config mismatch"
	case InvalidState:
		return "invalid state"
	case IndexError:
		return "index error"
	}
	return io.Sf("error kind %d", int(k))
}

// Error holds an error of a given kind
type Error struct {
	Kind ErrKind
	Msg  string
}

// sentinels to be used with errors.Is
var (
	ErrInvalidTable   = &Error{Kind: InvalidTable}
	ErrConfigMismatch = &Error{Kind: ConfigMismatch}
	ErrInvalidState   = &Error{Kind: InvalidState}
	ErrIndex          = &Error{Kind: IndexError}
)

// Error implements the error interface
func (o *Error) Error() string {
	if o.Msg == "" {
		return o.Kind.String()
	}
	return o.Kind.String() + ": " + o.Msg
}

// Is reports whether target is an *Error of the same kind
func (o *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == o.Kind
}

// Err returns a new error of kind k
func Err(k ErrKind, msg string, prm ...interface{}) error {
	return &Error{Kind: k, Msg: io.Sf(msg, prm...)}
}

// Msg returns the message of err without the kind prefix
func Msg(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Msg
	}
	return err.Error()
}
