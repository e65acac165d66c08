// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of script error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrStackUnderflow is returned when an opcode requires more items on
	// the stack than are present.
	ErrStackUnderflow ErrorCode = iota

	// ErrTruncatedScript is returned when a data push declares more bytes
	// than remain in the script, or when the length field of an
	// OP_PUSHDATA# opcode itself runs past the end of the script.
	ErrTruncatedScript

	// ErrMalformedPush is returned when push data is structurally invalid
	// in a way other than truncation, such as an operation token that
	// carries a data push opcode but no payload.
	ErrMalformedPush

	// ErrUnsupportedOpcode is returned when a byte that is not part of the
	// instruction table is encountered.  The offending byte is available
	// via the Byte field of the returned Error.
	ErrUnsupportedOpcode

	// ErrVerify is returned when OP_VERIFY, OP_EQUALVERIFY or
	// OP_CHECKSIGVERIFY consumes a value that is not true.
	ErrVerify

	// ErrScriptFailed is returned by callers that report a false final
	// verdict as an error rather than as a boolean.
	ErrScriptFailed

	// ErrEarlyReturn is returned when OP_RETURN is executed.  This marks an
	// intentionally unspendable script rather than a logic failure.
	ErrEarlyReturn

	// ErrUnbalancedConditional is returned when OP_ELSE or OP_ENDIF is
	// encountered without a matching OP_IF or OP_NOTIF, or when a script
	// ends with conditional blocks still open.
	ErrUnbalancedConditional

	// ErrInvalidHex is returned when a hex string has an odd length or
	// contains non-hex characters.
	ErrInvalidHex

	// numErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrStackUnderflow:        "ErrStackUnderflow",
	ErrTruncatedScript:       "ErrTruncatedScript",
	ErrMalformedPush:         "ErrMalformedPush",
	ErrUnsupportedOpcode:     "ErrUnsupportedOpcode",
	ErrVerify:                "ErrVerify",
	ErrScriptFailed:          "ErrScriptFailed",
	ErrEarlyReturn:           "ErrEarlyReturn",
	ErrUnbalancedConditional: "ErrUnbalancedConditional",
	ErrInvalidHex:            "ErrInvalidHex",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// ErrorCodeFromString returns the ErrorCode whose constant name is s.  The
// second return value is false when no such code exists.
func ErrorCodeFromString(s string) (ErrorCode, bool) {
	for code, name := range errorCodeStrings {
		if name == s {
			return code, true
		}
	}
	return 0, false
}

// Error identifies a script-related error.  It is used to indicate three
// classes of errors:
//  1. Script parse failures such as truncated pushes or unsupported opcodes
//  2. Failures during execution such as stack underflow or a failed verify
//  3. Failures decoding hex input to the script helpers
//
// The caller can use type assertions or errors.As to determine if an error is
// an Error and access the ErrorCode field to ascertain the specific reason for
// the failure.
type Error struct {
	ErrorCode   ErrorCode
	Description string

	// Byte is the offending raw byte for ErrUnsupportedOpcode and is zero
	// for every other kind.
	Byte byte
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// unsupportedOpcodeError creates an ErrUnsupportedOpcode Error that retains
// the offending byte.
func unsupportedOpcodeError(b byte) Error {
	str := fmt.Sprintf("unsupported opcode 0x%02x", b)
	return Error{ErrorCode: ErrUnsupportedOpcode, Description: str, Byte: b}
}

// IsErrorCode returns whether or not the provided error is a script error with
// the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var serr Error
	return errors.As(err, &serr) && serr.ErrorCode == c
}
