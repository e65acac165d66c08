// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"fmt"
)

// Token is a single parsed unit of a script.  It is either a data push, which
// carries the pushed bytes regardless of which push encoding produced them, or
// an operation identified by its opcode.  The zero value is the OP_0 operation.
type Token struct {
	isData bool
	op     Opcode
	data   []byte
}

// NewDataToken returns a token that pushes the passed bytes.
func NewDataToken(data []byte) Token {
	return Token{isData: true, data: data}
}

// NewOpToken returns a token that executes the passed opcode.
func NewOpToken(op Opcode) Token {
	return Token{op: op}
}

// IsData returns whether or not the token is a data push.
func (t Token) IsData() bool {
	return t.isData
}

// Opcode returns the opcode of an operation token.  It is OP_0 for data
// tokens and must not be relied upon in that case.
func (t Token) Opcode() Opcode {
	return t.op
}

// Data returns the bytes pushed by a data token, or nil for an operation.
func (t Token) Data() []byte {
	return t.data
}

// Equal returns whether both tokens are of the same kind with the same
// contents.  Data tokens compare their bytes, so an empty push equals a nil
// push.
func (t Token) Equal(other Token) bool {
	if t.isData != other.isData {
		return false
	}
	if t.isData {
		return bytes.Equal(t.data, other.data)
	}
	return t.op == other.op
}

// String returns the data as lowercase hex enclosed in angle brackets for data
// tokens and the opcode name for operation tokens.
func (t Token) String() string {
	if t.isData {
		return fmt.Sprintf("<%x>", t.data)
	}
	return t.op.String()
}
