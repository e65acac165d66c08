// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"fmt"
)

// Opcode identifies a script instruction by its protocol byte value.
type Opcode byte

// An opcode defines the information related to a txscript opcode.  opfunc, if
// present, is the function to call to perform the opcode on the script.  Only
// the supported instructions have an entry; every other byte value has the
// zero value.
type opcode struct {
	value  Opcode
	name   string
	opfunc func(*opcode, *Engine) error
}

// These constants are the values of the official opcodes used on the btc wiki,
// in bitcoin core and in most if not all other references and software related
// to handling BTC scripts.  Only the opcodes in opcodeArray are executable; the
// push opcodes are consumed by the tokenizer and OP_RESERVED is listed so it
// can be named.
const (
	OP_0              Opcode = 0x00 // 0
	OP_FALSE          Opcode = 0x00 // 0 - AKA OP_0
	OP_DATA_1         Opcode = 0x01 // 1
	OP_DATA_75        Opcode = 0x4b // 75
	OP_PUSHDATA1      Opcode = 0x4c // 76
	OP_PUSHDATA2      Opcode = 0x4d // 77
	OP_PUSHDATA4      Opcode = 0x4e // 78
	OP_1NEGATE        Opcode = 0x4f // 79
	OP_RESERVED       Opcode = 0x50 // 80
	OP_1              Opcode = 0x51 // 81 - AKA OP_TRUE
	OP_TRUE           Opcode = 0x51 // 81
	OP_2              Opcode = 0x52 // 82
	OP_3              Opcode = 0x53 // 83
	OP_4              Opcode = 0x54 // 84
	OP_5              Opcode = 0x55 // 85
	OP_6              Opcode = 0x56 // 86
	OP_7              Opcode = 0x57 // 87
	OP_8              Opcode = 0x58 // 88
	OP_9              Opcode = 0x59 // 89
	OP_10             Opcode = 0x5a // 90
	OP_11             Opcode = 0x5b // 91
	OP_12             Opcode = 0x5c // 92
	OP_13             Opcode = 0x5d // 93
	OP_14             Opcode = 0x5e // 94
	OP_15             Opcode = 0x5f // 95
	OP_16             Opcode = 0x60 // 96
	OP_NOP            Opcode = 0x61 // 97
	OP_IF             Opcode = 0x63 // 99
	OP_NOTIF          Opcode = 0x64 // 100
	OP_ELSE           Opcode = 0x67 // 103
	OP_ENDIF          Opcode = 0x68 // 104
	OP_VERIFY         Opcode = 0x69 // 105
	OP_RETURN         Opcode = 0x6a // 106
	OP_2DROP          Opcode = 0x6d // 109
	OP_2DUP           Opcode = 0x6e // 110
	OP_DEPTH          Opcode = 0x74 // 116
	OP_DROP           Opcode = 0x75 // 117
	OP_DUP            Opcode = 0x76 // 118
	OP_NIP            Opcode = 0x77 // 119
	OP_OVER           Opcode = 0x78 // 120
	OP_SWAP           Opcode = 0x7c // 124
	OP_TUCK           Opcode = 0x7d // 125
	OP_SIZE           Opcode = 0x82 // 130
	OP_EQUAL          Opcode = 0x87 // 135
	OP_EQUALVERIFY    Opcode = 0x88 // 136
	OP_NOT            Opcode = 0x91 // 145
	OP_RIPEMD160      Opcode = 0xa6 // 166
	OP_SHA256         Opcode = 0xa8 // 168
	OP_HASH160        Opcode = 0xa9 // 169
	OP_HASH256        Opcode = 0xaa // 170
	OP_CHECKSIG       Opcode = 0xac // 172
	OP_CHECKSIGVERIFY Opcode = 0xad // 173
)

// opcodeArray holds details about all possible opcodes such as its
// human-readable name and the handler function.  Entries for unsupported
// byte values are left as the zero value.
var opcodeArray = [256]opcode{
	// Constants.
	OP_FALSE:    {OP_FALSE, "OP_0", opcodeFalse},
	OP_1NEGATE:  {OP_1NEGATE, "OP_1NEGATE", opcode1Negate},
	OP_TRUE:     {OP_TRUE, "OP_1", opcodeN},
	OP_2:        {OP_2, "OP_2", opcodeN},
	OP_3:        {OP_3, "OP_3", opcodeN},
	OP_4:        {OP_4, "OP_4", opcodeN},
	OP_5:        {OP_5, "OP_5", opcodeN},
	OP_6:        {OP_6, "OP_6", opcodeN},
	OP_7:        {OP_7, "OP_7", opcodeN},
	OP_8:        {OP_8, "OP_8", opcodeN},
	OP_9:        {OP_9, "OP_9", opcodeN},
	OP_10:       {OP_10, "OP_10", opcodeN},
	OP_11:       {OP_11, "OP_11", opcodeN},
	OP_12:       {OP_12, "OP_12", opcodeN},
	OP_13:       {OP_13, "OP_13", opcodeN},
	OP_14:       {OP_14, "OP_14", opcodeN},
	OP_15:       {OP_15, "OP_15", opcodeN},
	OP_16:       {OP_16, "OP_16", opcodeN},

	// Control opcodes.
	OP_NOP:    {OP_NOP, "OP_NOP", opcodeNop},
	OP_IF:     {OP_IF, "OP_IF", opcodeIf},
	OP_NOTIF:  {OP_NOTIF, "OP_NOTIF", opcodeNotIf},
	OP_ELSE:   {OP_ELSE, "OP_ELSE", opcodeElse},
	OP_ENDIF:  {OP_ENDIF, "OP_ENDIF", opcodeEndif},
	OP_VERIFY: {OP_VERIFY, "OP_VERIFY", opcodeVerify},
	OP_RETURN: {OP_RETURN, "OP_RETURN", opcodeReturn},

	// Stack opcodes.
	OP_2DROP: {OP_2DROP, "OP_2DROP", opcode2Drop},
	OP_2DUP:  {OP_2DUP, "OP_2DUP", opcode2Dup},
	OP_DEPTH: {OP_DEPTH, "OP_DEPTH", opcodeDepth},
	OP_DROP:  {OP_DROP, "OP_DROP", opcodeDrop},
	OP_DUP:   {OP_DUP, "OP_DUP", opcodeDup},
	OP_NIP:   {OP_NIP, "OP_NIP", opcodeNip},
	OP_OVER:  {OP_OVER, "OP_OVER", opcodeOver},
	OP_SWAP:  {OP_SWAP, "OP_SWAP", opcodeSwap},
	OP_TUCK:  {OP_TUCK, "OP_TUCK", opcodeTuck},

	// Splice opcodes.
	OP_SIZE: {OP_SIZE, "OP_SIZE", opcodeSize},

	// Comparison opcodes.
	OP_EQUAL:       {OP_EQUAL, "OP_EQUAL", opcodeEqual},
	OP_EQUALVERIFY: {OP_EQUALVERIFY, "OP_EQUALVERIFY", opcodeEqualVerify},

	// Logic opcodes.
	OP_NOT: {OP_NOT, "OP_NOT", opcodeNot},

	// Crypto opcodes.
	OP_RIPEMD160:      {OP_RIPEMD160, "OP_RIPEMD160", opcodeRipemd160},
	OP_SHA256:         {OP_SHA256, "OP_SHA256", opcodeSha256},
	OP_HASH160:        {OP_HASH160, "OP_HASH160", opcodeHash160},
	OP_HASH256:        {OP_HASH256, "OP_HASH256", opcodeHash256},
	OP_CHECKSIG:       {OP_CHECKSIG, "OP_CHECKSIG", opcodeCheckSig},
	OP_CHECKSIGVERIFY: {OP_CHECKSIGVERIFY, "OP_CHECKSIGVERIFY", opcodeCheckSigVerify},
}

// IsSupported returns whether or not the opcode is one of the executable
// instructions in the instruction table.
func (op Opcode) IsSupported() bool {
	return opcodeArray[op].opfunc != nil
}

// isPushData returns whether or not the opcode value is reserved for one of the
// data push encodings, which are represented by data tokens rather than
// operation tokens.
func (op Opcode) isPushData() bool {
	return op >= OP_DATA_1 && op <= OP_PUSHDATA4
}

// String returns the human-readable name of the opcode.  Data push opcodes are
// named after their encoding and unsupported values are reported as
// OP_UNKNOWN followed by their decimal value.
func (op Opcode) String() string {
	if name := opcodeArray[op].name; name != "" {
		return name
	}

	switch {
	case op >= OP_DATA_1 && op <= OP_DATA_75:
		return fmt.Sprintf("OP_DATA_%d", op)
	case op == OP_PUSHDATA1:
		return "OP_PUSHDATA1"
	case op == OP_PUSHDATA2:
		return "OP_PUSHDATA2"
	case op == OP_PUSHDATA4:
		return "OP_PUSHDATA4"
	case op == OP_RESERVED:
		return "OP_RESERVED"
	}
	return fmt.Sprintf("OP_UNKNOWN%d", op)
}

// isConditional returns whether or not the opcode is a conditional opcode which
// changes the conditional execution stack when executed.
func (pop *opcode) isConditional() bool {
	switch pop.value {
	case OP_IF, OP_NOTIF, OP_ELSE, OP_ENDIF:
		return true
	}
	return false
}

// *******************************************
// Opcode implementation functions start here.
// *******************************************

// opcodeFalse pushes an empty array to the data stack to represent false.  Note
// that 0, when encoded as a number according to the numeric encoding consensus
// rules, is an empty array.
func opcodeFalse(op *opcode, vm *Engine) error {
	vm.dstack.PushByteArray(nil)
	return nil
}

// opcode1Negate pushes -1, encoded as a number, to the data stack.
func opcode1Negate(op *opcode, vm *Engine) error {
	vm.dstack.PushByteArray(scriptNum(-1).Bytes())
	return nil
}

// opcodeN is a common handler for the small integer data push opcodes.  It
// pushes the numeric value the opcode represents (which will be from 1 to 16)
// onto the data stack.
func opcodeN(op *opcode, vm *Engine) error {
	// The opcodes are all defined consecutively, so the numeric value is
	// the difference.
	vm.dstack.PushByteArray(scriptNum(op.value - (OP_1 - 1)).Bytes())
	return nil
}

// opcodeNop is a common handler for the NOP family of opcodes.  As the name
// implies it generally does nothing.
func opcodeNop(op *opcode, vm *Engine) error {
	return nil
}

// opcodeIf treats the top item on the data stack as a boolean and removes it.
//
// An appropriate entry is added to the conditional stack depending on whether
// the boolean is true and whether this if is on an executing branch in order
// to allow proper execution of further opcodes depending on the conditional
// logic.  When the boolean is true, the first branch will be executed (unless
// this opcode is nested in a non-executed branch).
//
// <expression> if [statements] [else [statements]] endif
//
// Note that, unlike for all non-conditional opcodes, this is executed even when
// it is on a non-executing branch so proper nesting is maintained.
//
// Data stack transformation: [... bool] -> [...]
// Conditional stack transformation: [...] -> [... bool]
func opcodeIf(op *opcode, vm *Engine) error {
	condVal := false
	if vm.isBranchExecuting() {
		ok, err := vm.dstack.PopBool()
		if err != nil {
			return err
		}
		condVal = ok
	}
	vm.condStack = append(vm.condStack, condVal)
	return nil
}

// opcodeNotIf treats the top item on the data stack as a boolean and removes
// it.
//
// An appropriate entry is added to the conditional stack depending on whether
// the boolean is true and whether this if is on an executing branch in order
// to allow proper execution of further opcodes depending on the conditional
// logic.  When the boolean is false, the first branch will be executed (unless
// this opcode is nested in a non-executed branch).
//
// <expression> notif [statements] [else [statements]] endif
//
// Note that, unlike for all non-conditional opcodes, this is executed even when
// it is on a non-executing branch so proper nesting is maintained.
//
// Data stack transformation: [... bool] -> [...]
// Conditional stack transformation: [...] -> [... !bool]
func opcodeNotIf(op *opcode, vm *Engine) error {
	condVal := false
	if vm.isBranchExecuting() {
		ok, err := vm.dstack.PopBool()
		if err != nil {
			return err
		}
		condVal = !ok
	}
	vm.condStack = append(vm.condStack, condVal)
	return nil
}

// opcodeElse inverts conditional execution for other half of if/else/endif.
// Only the innermost conditional is inverted, so an else nested in a
// non-executed branch still leaves that branch non-executing.
//
// An error is returned if there has not already been a matching OP_IF.
//
// Conditional stack transformation: [... bool] -> [... !bool]
func opcodeElse(op *opcode, vm *Engine) error {
	if len(vm.condStack) == 0 {
		str := fmt.Sprintf("encountered opcode %s with no matching "+
			"opcode to begin conditional execution", op.name)
		return scriptError(ErrUnbalancedConditional, str)
	}

	conditionalIdx := len(vm.condStack) - 1
	vm.condStack[conditionalIdx] = !vm.condStack[conditionalIdx]
	return nil
}

// opcodeEndif terminates a conditional block, removing the value from the
// conditional execution stack.
//
// An error is returned if there has not already been a matching OP_IF.
//
// Conditional stack transformation: [... bool] -> [...]
func opcodeEndif(op *opcode, vm *Engine) error {
	if len(vm.condStack) == 0 {
		str := fmt.Sprintf("encountered opcode %s with no matching "+
			"opcode to begin conditional execution", op.name)
		return scriptError(ErrUnbalancedConditional, str)
	}

	vm.condStack = vm.condStack[:len(vm.condStack)-1]
	return nil
}

// abstractVerify examines the top item on the data stack as a boolean value and
// verifies it evaluates to true.  An error is returned either when there is no
// item on the stack or when that item evaluates to false.  In the latter case
// where the verification fails specifically due to the top item evaluating
// to false, the returned error will use the passed error code.
func abstractVerify(op *opcode, vm *Engine, c ErrorCode) error {
	verified, err := vm.dstack.PopBool()
	if err != nil {
		return err
	}

	if !verified {
		str := fmt.Sprintf("%s failed", op.name)
		return scriptError(c, str)
	}
	return nil
}

// opcodeVerify examines the top item on the data stack as a boolean value and
// verifies it evaluates to true.  An error is returned if it does not.
func opcodeVerify(op *opcode, vm *Engine) error {
	return abstractVerify(op, vm, ErrVerify)
}

// opcodeReturn returns an appropriate error since it is always an error to
// return early from a script.
func opcodeReturn(op *opcode, vm *Engine) error {
	return scriptError(ErrEarlyReturn, "script returned early")
}

// opcode2Drop removes the top 2 items from the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1]
func opcode2Drop(op *opcode, vm *Engine) error {
	return vm.dstack.DropN(2)
}

// opcode2Dup duplicates the top 2 items on the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2 x3 x2 x3]
func opcode2Dup(op *opcode, vm *Engine) error {
	return vm.dstack.DupN(2)
}

// opcodeDepth pushes the depth of the data stack prior to executing this
// opcode, encoded as a number, onto the data stack.
//
// Stack transformation: [...] -> [... <num of items on the stack>]
// Example with 2 items: [x1 x2] -> [x1 x2 2]
// Example with 3 items: [x1 x2 x3] -> [x1 x2 x3 3]
func opcodeDepth(op *opcode, vm *Engine) error {
	vm.dstack.PushByteArray(scriptNum(vm.dstack.Depth()).Bytes())
	return nil
}

// opcodeDrop removes the top item from the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2]
func opcodeDrop(op *opcode, vm *Engine) error {
	return vm.dstack.DropN(1)
}

// opcodeDup duplicates the top item on the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2 x3 x3]
func opcodeDup(op *opcode, vm *Engine) error {
	return vm.dstack.DupN(1)
}

// opcodeNip removes the item before the top item on the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x3]
func opcodeNip(op *opcode, vm *Engine) error {
	if err := vm.dstack.requireDepth(2); err != nil {
		return err
	}
	return vm.dstack.NipN(1)
}

// opcodeOver duplicates the item before the top item on the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2 x3 x2]
func opcodeOver(op *opcode, vm *Engine) error {
	return vm.dstack.OverN(1)
}

// opcodeSwap swaps the top two items on the stack.
//
// Stack transformation: [... x1 x2] -> [... x2 x1]
func opcodeSwap(op *opcode, vm *Engine) error {
	return vm.dstack.SwapN(1)
}

// opcodeTuck inserts a duplicate of the top item of the data stack before the
// second-to-top item.
//
// Stack transformation: [... x1 x2] -> [... x2 x1 x2]
func opcodeTuck(op *opcode, vm *Engine) error {
	return vm.dstack.Tuck()
}

// opcodeSize pushes the size of the top item of the data stack onto the data
// stack.
//
// Stack transformation: [... x1] -> [... x1 len(x1)]
func opcodeSize(op *opcode, vm *Engine) error {
	so, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}

	vm.dstack.PushByteArray(scriptNum(len(so)).Bytes())
	return nil
}

// opcodeEqual removes the top 2 items of the data stack, compares them as raw
// bytes, and pushes the result, encoded as a boolean, back to the stack.
//
// Stack transformation: [... x1 x2] -> [... bool]
func opcodeEqual(op *opcode, vm *Engine) error {
	if err := vm.dstack.requireDepth(2); err != nil {
		return err
	}

	a, _ := vm.dstack.PopByteArray()
	b, _ := vm.dstack.PopByteArray()
	vm.dstack.PushBool(bytes.Equal(a, b))
	return nil
}

// opcodeEqualVerify is a combination of opcodeEqual and opcodeVerify.
// Specifically, it removes the top 2 items of the data stack, compares them,
// and pushes the result, encoded as a boolean, back to the stack.  Then, it
// examines the top item on the data stack as a boolean value and verifies it
// evaluates to true.  An error is returned if it does not.
//
// Stack transformation: [... x1 x2] -> [... bool] -> [...]
func opcodeEqualVerify(op *opcode, vm *Engine) error {
	err := opcodeEqual(op, vm)
	if err == nil {
		err = abstractVerify(op, vm, ErrVerify)
	}
	return err
}

// opcodeNot treats the top item on the data stack as the canonical encoding of
// zero or one and replaces it with its logical inverse.  The empty array and
// [0x00] become [0x01]; every other value, including [0x01], becomes the empty
// array.  This only flips the canonical 0/1 encodings and is not a negation of
// AsBool, so for example [0x80] becomes the empty array.
//
// Stack transformation: [... x1 x2] -> [... x1 !x2]
func opcodeNot(op *opcode, vm *Engine) error {
	so, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	isZero := len(so) == 0 || (len(so) == 1 && so[0] == 0x00)
	vm.dstack.PushBool(isZero)
	return nil
}

// opcodeRipemd160 treats the top item of the data stack as raw bytes and
// replaces it with ripemd160(data).
//
// Stack transformation: [... x1] -> [... ripemd160(x1)]
func opcodeRipemd160(op *opcode, vm *Engine) error {
	buf, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	hash := Ripemd160(buf)
	vm.dstack.PushByteArray(hash[:])
	return nil
}

// opcodeSha256 treats the top item of the data stack as raw bytes and replaces
// it with sha256(data).
//
// Stack transformation: [... x1] -> [... sha256(x1)]
func opcodeSha256(op *opcode, vm *Engine) error {
	buf, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	hash := Sha256(buf)
	vm.dstack.PushByteArray(hash[:])
	return nil
}

// opcodeHash160 treats the top item of the data stack as raw bytes and replaces
// it with ripemd160(sha256(data)).
//
// Stack transformation: [... x1] -> [... ripemd160(sha256(x1))]
func opcodeHash160(op *opcode, vm *Engine) error {
	buf, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	hash := Hash160(buf)
	vm.dstack.PushByteArray(hash[:])
	return nil
}

// opcodeHash256 treats the top item of the data stack as raw bytes and replaces
// it with sha256(sha256(data)).
//
// Stack transformation: [... x1] -> [... sha256(sha256(x1))]
func opcodeHash256(op *opcode, vm *Engine) error {
	buf, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	hash := Hash256(buf)
	vm.dstack.PushByteArray(hash[:])
	return nil
}

// opcodeCheckSig treats the top 2 items on the stack as a public key and a
// signature and replaces them with a bool which indicates if the signature was
// successfully verified.
//
// Without a message digest in the execution options the check is a stub that
// always succeeds.  Otherwise the final byte of the signature selects the hash
// type, the remaining bytes must be a DER encoded signature, and the public key
// must be a valid secp256k1 key.  See checkSignature for the details.
//
// Stack transformation: [... signature pubkey] -> [... bool]
func opcodeCheckSig(op *opcode, vm *Engine) error {
	if err := vm.dstack.requireDepth(2); err != nil {
		return err
	}

	pkBytes, _ := vm.dstack.PopByteArray()
	fullSigBytes, _ := vm.dstack.PopByteArray()

	vm.dstack.PushBool(vm.checkSignature(pkBytes, fullSigBytes))
	return nil
}

// opcodeCheckSigVerify is a combination of opcodeCheckSig and opcodeVerify.
// The opcodeCheckSig function is invoked followed by opcodeVerify.  See the
// documentation for each of those opcodes for more details.
//
// Stack transformation: signature pubkey] -> [... bool] -> [...]
func opcodeCheckSigVerify(op *opcode, vm *Engine) error {
	err := opcodeCheckSig(op, vm)
	if err == nil {
		err = abstractVerify(op, vm, ErrVerify)
	}
	return err
}
