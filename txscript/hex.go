// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"fmt"
)

// DecodeHex decodes a hex string into raw bytes.  Both upper and lower case
// digits are accepted.  An ErrInvalidHex error is returned for odd-length
// input or input containing non-hex characters.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		str := fmt.Sprintf("hex string has odd length %d", len(s))
		return nil, scriptError(ErrInvalidHex, str)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("malformed hex string: %v", err)
		return nil, scriptError(ErrInvalidHex, str)
	}
	return b, nil
}

// ParseScriptHex decodes a hex-encoded script and tokenizes it.
func ParseScriptHex(s string) ([]Token, error) {
	script, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return ParseScript(script)
}
