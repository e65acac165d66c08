// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns the SHA-256 digest of b.
func Sha256(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], chainhash.HashB(b))
	return out
}

// Ripemd160 returns the RIPEMD-160 digest of b.
func Ripemd160(b []byte) [20]byte {
	var out [20]byte
	h := ripemd160.New()
	h.Write(b)
	copy(out[:], h.Sum(nil))
	return out
}

// Hash160 returns ripemd160(sha256(b)).
func Hash160(b []byte) [20]byte {
	var out [20]byte
	copy(out[:], btcutil.Hash160(b))
	return out
}

// Hash256 returns sha256(sha256(b)).
func Hash256(b []byte) [32]byte {
	return chainhash.DoubleHashH(b)
}
