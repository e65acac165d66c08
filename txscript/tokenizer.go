// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"fmt"
)

// ScriptTokenizer provides a facility for easily and efficiently tokenizing
// scripts without creating allocations.  Each successive token is parsed with
// the Next function, which returns false when iteration is complete, either due
// to successfully tokenizing the entire script or encountering a parse error.
// In the case of failure, the Err function may be used to obtain the specific
// parse error.
//
// Upon successfully parsing a token, it may be obtained via the Token
// function.  Data tokens reference the underlying script rather than a copy.
//
// The ByteIndex function may be used to obtain the tokenizer's current offset
// into the raw script.
type ScriptTokenizer struct {
	script []byte
	offset int
	tok    Token
	err    error
}

// Done returns true when either all opcodes have been exhausted or a parse
// failure was encountered and therefore the state has an associated error.
func (t *ScriptTokenizer) Done() bool {
	return t.err != nil || t.offset >= len(t.script)
}

// truncated sets the tokenizer error for a push that runs past the end of the
// script and always returns false so callers can return it directly.
func (t *ScriptTokenizer) truncated(op Opcode, need, have int64) bool {
	str := fmt.Sprintf("opcode %s at offset %d requires %d bytes, but "+
		"script only has %d remaining", op, t.offset, need, have)
	t.err = scriptError(ErrTruncatedScript, str)
	return false
}

// Next attempts to parse the next token and returns whether or not it was
// successful.  It will not be successful if invoked when already at the end of
// the script, a parse failure is encountered, or an associated error already
// exists due to a previous parse failure.
//
// In the case of a true return, the parsed token can be obtained with the
// Token function and the offset into the script will either point to the next
// opcode or the end of the script if the final token was parsed.
//
// In the case of a false return, the token will be the last successfully
// parsed value (if any) and the offset into the script will either point to
// the failing opcode or the end of the script if the function was invoked when
// already at the end of the script.
//
// Invoking this function when already at the end of the script is not
// considered an error and will simply return false.
func (t *ScriptTokenizer) Next() bool {
	if t.Done() {
		return false
	}

	op := Opcode(t.script[t.offset])
	rest := t.script[t.offset+1:]

	var lenBytes int
	switch {
	// Data pushes of specific lengths -- OP_DATA_[1-75].
	case op >= OP_DATA_1 && op <= OP_DATA_75:
		dataLen := int64(op)
		if int64(len(rest)) < dataLen {
			return t.truncated(op, dataLen, int64(len(rest)))
		}
		t.tok = NewDataToken(rest[:dataLen])
		t.offset += 1 + int(dataLen)
		return true

	// Data pushes with parsed lengths -- OP_PUSHDATA{1,2,4}.
	case op == OP_PUSHDATA1:
		lenBytes = 1
	case op == OP_PUSHDATA2:
		lenBytes = 2
	case op == OP_PUSHDATA4:
		lenBytes = 4

	// Everything else must be an executable opcode.  Note that OP_0,
	// OP_1NEGATE and OP_[1-16] are operations that push their value when
	// executed rather than data tokens.
	default:
		if !op.IsSupported() {
			t.err = unsupportedOpcodeError(byte(op))
			return false
		}
		t.tok = NewOpToken(op)
		t.offset++
		return true
	}

	if len(rest) < lenBytes {
		return t.truncated(op, int64(lenBytes), int64(len(rest)))
	}

	// The length field is little endian.
	var dataLen int64
	switch lenBytes {
	case 1:
		dataLen = int64(rest[0])
	case 2:
		dataLen = int64(binary.LittleEndian.Uint16(rest[:2]))
	case 4:
		dataLen = int64(binary.LittleEndian.Uint32(rest[:4]))
	}

	// Move to the beginning of the data.
	rest = rest[lenBytes:]
	if int64(len(rest)) < dataLen {
		return t.truncated(op, dataLen, int64(len(rest)))
	}

	t.tok = NewDataToken(rest[:dataLen])
	t.offset += 1 + lenBytes + int(dataLen)
	return true
}

// Script returns the full script associated with the tokenizer.
func (t *ScriptTokenizer) Script() []byte {
	return t.script
}

// ByteIndex returns the current offset into the full script that will be parsed
// next and therefore also implies everything before it has already been parsed.
func (t *ScriptTokenizer) ByteIndex() int {
	return t.offset
}

// Token returns the most recently successfully parsed token.
func (t *ScriptTokenizer) Token() Token {
	return t.tok
}

// Err returns any errors currently associated with the tokenizer.  This will
// only be non-nil in the case a parsing error was encountered.
func (t *ScriptTokenizer) Err() error {
	return t.err
}

// MakeScriptTokenizer returns a new instance of a script tokenizer.
//
// See the docs for ScriptTokenizer for more details.
func MakeScriptTokenizer(script []byte) ScriptTokenizer {
	return ScriptTokenizer{script: script}
}

// ParseScript tokenizes the entire script.  An empty script yields an empty
// token slice.  The first parse failure is returned along with no tokens.
//
// Unlike the tokenizer, the returned data tokens own copies of their payloads,
// so the caller may reuse the script buffer once ParseScript returns.
func ParseScript(script []byte) ([]Token, error) {
	tokens := make([]Token, 0, len(script))
	tokenizer := MakeScriptTokenizer(script)
	for tokenizer.Next() {
		tok := tokenizer.Token()
		if tok.IsData() {
			tok = NewDataToken(append([]byte(nil), tok.Data()...))
		}
		tokens = append(tokens, tok)
	}
	if err := tokenizer.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
