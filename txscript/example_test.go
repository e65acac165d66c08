// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript_test

import (
	"encoding/hex"
	"fmt"

	"github.com/itz-Pratham/mini-bitcoin-script/txscript"
)

// This example demonstrates disassembling a raw script into a one-line
// human-readable form.
func ExampleDisasmString() {
	script, err := hex.DecodeString("76a914128004ff2fcaf13b2b91eb654b1dc2b674f7ec6188ac")
	if err != nil {
		fmt.Println(err)
		return
	}

	disasm, err := txscript.DisasmString(script)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(disasm)

	// Output:
	// OP_DUP OP_HASH160 <128004ff2fcaf13b2b91eb654b1dc2b674f7ec61> OP_EQUALVERIFY OP_CHECKSIG
}

// This example demonstrates executing a single script and reading the final
// verdict.
func ExampleExecute() {
	tokens, err := txscript.ParseScriptHex("515187")
	if err != nil {
		fmt.Println(err)
		return
	}

	ok, err := txscript.Execute(tokens)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("verdict:", ok)

	// Output:
	// verdict: true
}

// This example demonstrates the two-phase validation of a pay-to-pubkey-hash
// spend with stub signature checking.
func ExampleValidate() {
	pubKey, _ := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb" +
		"2dce28d959f2815b16f81798")
	sig := []byte{0x30, 0x01}
	pubKeyHash := txscript.Hash160(pubKey)

	unlocking, err := txscript.SignatureScript(sig, pubKey)
	if err != nil {
		fmt.Println(err)
		return
	}
	locking, err := txscript.PayToPubKeyHashScript(pubKeyHash[:])
	if err != nil {
		fmt.Println(err)
		return
	}

	ok, err := txscript.Validate(unlocking, locking)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("valid:", ok)

	// A script that returns early is an error rather than a false verdict.
	_, err = txscript.Validate([]byte{byte(txscript.OP_RETURN)},
		[]byte{byte(txscript.OP_1)})
	fmt.Println(txscript.IsErrorCode(err, txscript.ErrEarlyReturn))

	// Output:
	// valid: true
	// true
}
