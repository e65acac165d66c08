// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements a subset of the bitcoin transaction script
language.

This package provides data structures and functions to parse and execute
bitcoin scripts and to validate an unlocking script against a locking script.

# Script Overview

Bitcoin transaction scripts are written in a stack-based, FORTH-like language.

The script language consists of a number of opcodes which fall into several
categories such as pushing and popping data to and from the stack, conditional
branching, comparing hashes, and checking cryptographic signatures.  Scripts are
processed from left to right and intentionally do not provide loops.

This package executes a fixed set of opcodes: the constants OP_0,
OP_1NEGATE and OP_1 through OP_16, the control opcodes OP_NOP, OP_IF, OP_NOTIF,
OP_ELSE, OP_ENDIF, OP_VERIFY and OP_RETURN, the stack opcodes OP_2DROP,
OP_2DUP, OP_DEPTH, OP_DROP, OP_DUP, OP_NIP, OP_OVER, OP_SWAP and OP_TUCK,
OP_SIZE, OP_EQUAL, OP_EQUALVERIFY, OP_NOT, the hashing opcodes OP_RIPEMD160,
OP_SHA256, OP_HASH160 and OP_HASH256, and OP_CHECKSIG and OP_CHECKSIGVERIFY.
Any other opcode is rejected by the tokenizer.

# Validation

A spend is validated in two phases.  The unlocking script (scriptSig) and the
locking script (scriptPubKey) are tokenized independently.  The unlocking
script runs first on an empty stack and the locking script then runs on the
stack it left behind.  The spend is valid when the top stack item is true once
both scripts have finished.

Signature checks are stubs that always succeed unless a message digest is
supplied through ExecuteOpts, in which case DER encoded ECDSA signatures are
verified against secp256k1 public keys.

# Errors

Errors returned by this package are of type txscript.Error.  This allows the
caller to programmatically determine the specific error by examining the
ErrorCode field of the type asserted txscript.Error while still providing rich
error messages with contextual information.  The IsErrorCode function checks
the code through any wrapping.  See ErrorCode in the package documentation for
a full list.
*/
package txscript
