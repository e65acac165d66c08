// Copyright (c) 2013-2022 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// SigHashType represents hash type bits at the end of a signature.
type SigHashType uint32

// Hash type bits from the end of a signature.  Only SigHashAll selects real
// verification; every other value falls back to the stub verifier.
const (
	SigHashAll SigHashType = 0x1
)

// signatureVerifier is an abstract interface that allows the op code execution
// to abstract over the type of signature validation being executed: the stub
// used when no message digest is available and ECDSA verification against the
// digest carried in the execution options.
type signatureVerifier interface {
	// Verify returns true if the signature verifier context deems the
	// signature to be valid for the given context.
	Verify() bool
}

// stubSigVerifier accepts every signature.
type stubSigVerifier struct{}

// Verify always returns true.
//
// NOTE: This is part of the signatureVerifier interface.
func (s stubSigVerifier) Verify() bool {
	return true
}

// baseSigVerifier is used to verify ECDSA signatures encoded in DER with a
// trailing hash type byte against a 33 or 65 byte secp256k1 public key.
type baseSigVerifier struct {
	pubKey *btcec.PublicKey

	sig *ecdsa.Signature

	sigHash *chainhash.Hash
}

// Verify returns true if the signature is valid for the public key and the
// message digest.
//
// NOTE: This is part of the signatureVerifier interface.
func (b *baseSigVerifier) Verify() bool {
	return b.sig.Verify(b.sigHash[:], b.pubKey)
}

// invalidSigVerifier rejects every signature.  It stands in for signature or
// public key material that could not be parsed.
type invalidSigVerifier struct{}

// Verify always returns false.
//
// NOTE: This is part of the signatureVerifier interface.
func (s invalidSigVerifier) Verify() bool {
	return false
}

// newSigVerifier returns the verifier for the passed public key and full
// signature, which includes the trailing hash type byte.
//
// Parse failures of either the signature or the public key are not errors;
// they yield a verifier that reports the signature as invalid so that the
// script pushes false rather than aborting.
func newSigVerifier(pkBytes, fullSigBytes []byte,
	opts ExecuteOpts) signatureVerifier {

	if opts.SigHash == nil {
		return stubSigVerifier{}
	}

	// An empty signature can never be valid.
	if len(fullSigBytes) < 1 {
		return invalidSigVerifier{}
	}

	// Trim off the hash type.  Only SIGHASH_ALL digests are supported, so
	// any other hash type is accepted as the stub does.
	hashType := SigHashType(fullSigBytes[len(fullSigBytes)-1])
	sigBytes := fullSigBytes[:len(fullSigBytes)-1]
	if hashType != SigHashAll {
		log.Debugf("unsupported hash type 0x%02x, accepting signature",
			uint32(hashType))
		return stubSigVerifier{}
	}

	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		log.Debugf("unable to parse signature: %v", err)
		return invalidSigVerifier{}
	}
	pubKey, err := btcec.ParsePubKey(pkBytes)
	if err != nil {
		log.Debugf("unable to parse public key: %v", err)
		return invalidSigVerifier{}
	}

	return &baseSigVerifier{
		pubKey:  pubKey,
		sig:     sig,
		sigHash: opts.SigHash,
	}
}

// checkSignature returns whether or not the full signature is valid for the
// public key under the engine's execution options.
func (vm *Engine) checkSignature(pkBytes, fullSigBytes []byte) bool {
	return newSigVerifier(pkBytes, fullSigBytes, vm.opts).Verify()
}
