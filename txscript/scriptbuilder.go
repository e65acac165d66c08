// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"fmt"
)

const (
	// defaultScriptAlloc is the default size used for the backing array
	// for a script being built by the ScriptBuilder.  The array will
	// dynamically grow as needed, but this figure is intended to provide
	// enough space for vast majority of scripts without needing to grow the
	// backing array multiple times.
	defaultScriptAlloc = 500
)

// ScriptBuilder provides a facility for building custom scripts.  It allows
// you to push opcodes, ints, and data while respecting canonical encoding.  In
// general it does not ensure the script will execute correctly, however any
// data pushes which would result in a script the tokenizer rejects will not be
// pushed and will result in the Script function returning an error.
//
// For example, the following would build a pay-to-pubkey-hash locking script:
//
//	builder := txscript.NewScriptBuilder()
//	builder.AddOp(txscript.OP_DUP).AddOp(txscript.OP_HASH160)
//	builder.AddData(pubKeyHash)
//	builder.AddOp(txscript.OP_EQUALVERIFY).AddOp(txscript.OP_CHECKSIG)
//	script, err := builder.Script()
//	if err != nil {
//		// Handle the error.
//		return
//	}
//	fmt.Printf("Final locking script: %x\n", script)
type ScriptBuilder struct {
	script []byte
	err    error
}

// AddOp pushes the passed opcode to the end of the script.  The script will not
// be modified if pushing the opcode would produce a script the tokenizer
// rejects.
func (b *ScriptBuilder) AddOp(opcode Opcode) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	switch {
	case opcode.isPushData():
		str := fmt.Sprintf("adding opcode %s would produce a malformed "+
			"data push; use AddData instead", opcode)
		b.err = scriptError(ErrMalformedPush, str)
		return b

	case !opcode.IsSupported():
		b.err = unsupportedOpcodeError(byte(opcode))
		return b
	}

	b.script = append(b.script, byte(opcode))
	return b
}

// AddOps pushes the passed opcodes to the end of the script.  The script will
// not be modified if pushing any of the opcodes would produce a script the
// tokenizer rejects.
func (b *ScriptBuilder) AddOps(opcodes []Opcode) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	for _, opcode := range opcodes {
		b.AddOp(opcode)
		if b.err != nil {
			return b
		}
	}
	return b
}

// pushDataSize returns the number of bytes a data token of the given length
// takes when encoded with the shortest push opcode.
func pushDataSize(dataLen int) int {
	if dataLen <= int(OP_DATA_75) {
		// An empty data token has no direct push form.
		if dataLen == 0 {
			return 2
		}
		return 1 + dataLen
	} else if dataLen <= 0xff {
		return 2 + dataLen
	} else if dataLen <= 0xffff {
		return 3 + dataLen
	}

	return 5 + dataLen
}

// addData is the internal function that actually pushes the passed data to the
// end of the script.  It automatically chooses canonical opcodes depending on
// the length of the data.  A zero length buffer will lead to a push of empty
// data onto the stack (OP_0).  No data limits are enforced with this function.
//
// The bytes pushed when the script executes are always exactly the passed
// data, so a single zero byte is pushed with OP_DATA_1 rather than OP_0.
func (b *ScriptBuilder) addData(data []byte) *ScriptBuilder {
	dataLen := len(data)

	// When the data consists of a single number that can be represented
	// by one of the "small integer" opcodes, use that opcode instead of
	// a data push opcode followed by the number.
	if dataLen == 0 {
		b.script = append(b.script, byte(OP_0))
		return b
	} else if dataLen == 1 && data[0] >= 1 && data[0] <= 16 {
		b.script = append(b.script, byte((OP_1-1)+Opcode(data[0])))
		return b
	} else if dataLen == 1 && data[0] == 0x81 {
		b.script = append(b.script, byte(OP_1NEGATE))
		return b
	}

	return b.addPushData(data)
}

// addPushData pushes the passed data to the end of the script using the
// shortest data push opcode.  Unlike addData, the result always tokenizes back
// into a data token holding the same bytes, including for empty data.
func (b *ScriptBuilder) addPushData(data []byte) *ScriptBuilder {
	dataLen := len(data)

	// Use one of the OP_DATA_# opcodes if the length of the data is small
	// enough so the data push instruction is only a single byte.
	// Otherwise, choose the smallest possible OP_PUSHDATA# opcode that
	// can represent the length of the data.
	if dataLen != 0 && dataLen <= int(OP_DATA_75) {
		b.script = append(b.script, byte((OP_DATA_1-1)+Opcode(dataLen)))
	} else if dataLen <= 0xff {
		b.script = append(b.script, byte(OP_PUSHDATA1), byte(dataLen))
	} else if dataLen <= 0xffff {
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		b.script = append(b.script, byte(OP_PUSHDATA2))
		b.script = append(b.script, buf...)
	} else {
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		b.script = append(b.script, byte(OP_PUSHDATA4))
		b.script = append(b.script, buf...)
	}

	// Append the actual data.
	b.script = append(b.script, data...)

	return b
}

// AddData pushes the passed data to the end of the script.  It automatically
// chooses canonical opcodes depending on the length of the data.  A zero length
// buffer will lead to a push of empty data onto the stack (OP_0) and single
// bytes 1 through 16 and 0x81 use the small integer opcodes, which push the
// same bytes.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	return b.addData(data)
}

// AddInt64 pushes the passed integer to the end of the script.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Fast path for small integers and OP_1NEGATE.
	if val == 0 {
		b.script = append(b.script, byte(OP_0))
		return b
	}
	if val == -1 {
		b.script = append(b.script, byte(OP_1NEGATE))
		return b
	}
	if val >= 1 && val <= 16 {
		b.script = append(b.script, byte((OP_1-1)+Opcode(val)))
		return b
	}

	return b.addPushData(scriptNum(val).Bytes())
}

// AddToken pushes the passed token to the end of the script in a form that
// tokenizes back into an equal token.  Data tokens always use a data push
// opcode, so an empty data token is encoded as OP_PUSHDATA1 with a zero
// length rather than as OP_0.
func (b *ScriptBuilder) AddToken(tok Token) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	if tok.IsData() {
		return b.addPushData(tok.Data())
	}
	return b.AddOp(tok.Opcode())
}

// Reset resets the script so it has no content.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.script = b.script[0:0]
	b.err = nil
	return b
}

// Script returns the currently built script.  When any errors occurred while
// building the script, the script will be returned up the point of the first
// error along with the error.
func (b *ScriptBuilder) Script() ([]byte, error) {
	return b.script, b.err
}

// NewScriptBuilder returns a new instance of a script builder.  See
// ScriptBuilder for details.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{
		script: make([]byte, 0, defaultScriptAlloc),
	}
}

// UnparseScript reverses the action of ParseScript, returning the script bytes
// for the passed tokens.  ParseScript applied to the result yields tokens equal
// to the input.
func UnparseScript(tokens []Token) ([]byte, error) {
	size := 0
	for _, tok := range tokens {
		if tok.IsData() {
			size += pushDataSize(len(tok.Data()))
		} else {
			size++
		}
	}

	b := &ScriptBuilder{script: make([]byte, 0, size)}
	for _, tok := range tokens {
		b.AddToken(tok)
	}
	return b.Script()
}
