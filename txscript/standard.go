// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

// pubKeyHashLen is the length of a public key hash committed to by a
// pay-to-pubkey-hash script.
const pubKeyHashLen = 20

// PayToPubKeyHashScript creates a new locking script that pays to the passed
// 20-byte public key hash:
//
//	OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
func PayToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != pubKeyHashLen {
		str := fmt.Sprintf("public key hash is %d bytes instead of %d",
			len(pubKeyHash), pubKeyHashLen)
		return nil, scriptError(ErrMalformedPush, str)
	}

	return NewScriptBuilder().AddOp(OP_DUP).AddOp(OP_HASH160).
		AddData(pubKeyHash).AddOp(OP_EQUALVERIFY).AddOp(OP_CHECKSIG).
		Script()
}

// SignatureScript creates the unlocking script that spends a
// pay-to-pubkey-hash output: the signature, including its trailing hash type
// byte, followed by the serialized public key.
func SignatureScript(sig, pubKey []byte) ([]byte, error) {
	return NewScriptBuilder().AddData(sig).AddData(pubKey).Script()
}

// ExtractPubKeyHash extracts the public key hash from the passed script if it
// is a standard pay-to-pubkey-hash script.  It will return nil otherwise.
func ExtractPubKeyHash(script []byte) []byte {
	// A pay-to-pubkey-hash script is of the form:
	//  OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
	if len(script) == 25 &&
		script[0] == byte(OP_DUP) &&
		script[1] == byte(OP_HASH160) &&
		script[2] == byte(OP_DATA_1-1+pubKeyHashLen) &&
		script[23] == byte(OP_EQUALVERIFY) &&
		script[24] == byte(OP_CHECKSIG) {

		return script[3:23]
	}

	return nil
}

// IsPayToPubKeyHash returns true if the script is in the standard
// pay-to-pubkey-hash format, false otherwise.
func IsPayToPubKeyHash(script []byte) bool {
	return ExtractPubKeyHash(script) != nil
}
