// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"strings"
)

// DisasmString formats a disassembled script for one line printing.  When the
// script fails to parse, the returned string will contain the disassembled
// script up to the point the failure occurred along with the string '[error]'
// appended.  In addition, the reason the script failed to parse is returned
// if the caller wants more information about the failure.
//
// Data pushes are shown as hex in angle brackets and operations by their
// canonical name, for example "OP_DUP OP_HASH160 <0011...> OP_EQUALVERIFY".
func DisasmString(script []byte) (string, error) {
	var disbuf strings.Builder
	tokenizer := MakeScriptTokenizer(script)
	if tokenizer.Next() {
		disbuf.WriteString(tokenizer.Token().String())
	}
	for tokenizer.Next() {
		disbuf.WriteByte(' ')
		disbuf.WriteString(tokenizer.Token().String())
	}

	if tokenizer.Err() != nil {
		if tokenizer.ByteIndex() != 0 {
			disbuf.WriteByte(' ')
		}
		disbuf.WriteString("[error]")
	}
	return disbuf.String(), tokenizer.Err()
}

// DisasmTokens formats already parsed tokens for one line printing in the same
// form as DisasmString.
func DisasmTokens(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.String())
	}
	return strings.Join(parts, " ")
}
