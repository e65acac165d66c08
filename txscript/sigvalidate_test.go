// Copyright (c) 2013-2022 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

// signTestDigest signs the digest with a deterministic test key and returns the
// full signature with the hash type appended along with the compressed and
// uncompressed public keys.
func signTestDigest(t *testing.T, digest *chainhash.Hash,
	hashType SigHashType) ([]byte, []byte, []byte) {

	t.Helper()

	privKey := secp256k1.PrivKeyFromBytes(hexToBytes("22a47fa09a223f2aa07" +
		"9edf85a7c2d4f8720ee63e502ee2869afab7de234b80c"))
	sig := ecdsa.Sign(privKey, digest[:])
	fullSig := append(sig.Serialize(), byte(hashType))

	pubKey := privKey.PubKey()
	return fullSig, pubKey.SerializeCompressed(),
		pubKey.SerializeUncompressed()
}

// TestCheckSig exercises OP_CHECKSIG and OP_CHECKSIGVERIFY with both stub and
// real signature verification.
func TestCheckSig(t *testing.T) {
	t.Parallel()

	digest := chainhash.DoubleHashH([]byte("spend me"))
	otherDigest := chainhash.DoubleHashH([]byte("spend someone else"))
	sig, pubKey, uncompressed := signTestDigest(t, &digest, SigHashAll)
	sigNone, _, _ := signTestDigest(t, &digest, 0x02)

	malformedSig := append([]byte{}, sig...)
	malformedSig[0] = 0x31

	badPubKey := append([]byte{}, pubKey...)
	badPubKey[0] = 0x05

	tests := []struct {
		name    string
		sig     []byte
		pubKey  []byte
		sigHash *chainhash.Hash
		verify  bool
		want    bool
		wantErr ErrorCode
	}{{
		name:    "stub accepts garbage",
		sig:     []byte{0xde, 0xad},
		pubKey:  []byte{0xbe, 0xef},
		sigHash: nil,
		want:    true,
		wantErr: noError,
	}, {
		name:    "valid compressed key",
		sig:     sig,
		pubKey:  pubKey,
		sigHash: &digest,
		want:    true,
		wantErr: noError,
	}, {
		name:    "valid uncompressed key",
		sig:     sig,
		pubKey:  uncompressed,
		sigHash: &digest,
		want:    true,
		wantErr: noError,
	}, {
		name:    "wrong digest",
		sig:     sig,
		pubKey:  pubKey,
		sigHash: &otherDigest,
		want:    false,
		wantErr: noError,
	}, {
		name:    "empty signature",
		sig:     nil,
		pubKey:  pubKey,
		sigHash: &digest,
		want:    false,
		wantErr: noError,
	}, {
		name:    "unsupported hash type falls back to stub",
		sig:     sigNone,
		pubKey:  []byte{0x01},
		sigHash: &otherDigest,
		want:    true,
		wantErr: noError,
	}, {
		name:    "malformed signature",
		sig:     malformedSig,
		pubKey:  pubKey,
		sigHash: &digest,
		want:    false,
		wantErr: noError,
	}, {
		name:    "hash type only",
		sig:     []byte{byte(SigHashAll)},
		pubKey:  pubKey,
		sigHash: &digest,
		want:    false,
		wantErr: noError,
	}, {
		name:    "malformed public key",
		sig:     sig,
		pubKey:  badPubKey,
		sigHash: &digest,
		want:    false,
		wantErr: noError,
	}, {
		name:    "verify valid",
		sig:     sig,
		pubKey:  pubKey,
		sigHash: &digest,
		verify:  true,
		want:    false,
		wantErr: noError,
	}, {
		name:    "verify wrong digest",
		sig:     sig,
		pubKey:  pubKey,
		sigHash: &otherDigest,
		verify:  true,
		want:    false,
		wantErr: ErrVerify,
	}}

	for _, test := range tests {
		op := OP_CHECKSIG
		if test.verify {
			op = OP_CHECKSIGVERIFY
		}
		tokens := []Token{
			NewDataToken(test.sig),
			NewDataToken(test.pubKey),
			NewOpToken(op),
		}

		got, err := ExecuteWithOpts(tokens, ExecuteOpts{SigHash: test.sigHash})
		if test.wantErr != noError {
			require.Truef(t, IsErrorCode(err, test.wantErr),
				"%s: got %v", test.name, err)
			continue
		}
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, got, test.name)
	}
}

// TestCheckSigPopOrder ensures the public key is taken from the top of the
// stack and the signature from below it.
func TestCheckSigPopOrder(t *testing.T) {
	t.Parallel()

	digest := chainhash.DoubleHashH([]byte("order"))
	sig, pubKey, _ := signTestDigest(t, &digest, SigHashAll)
	opts := ExecuteOpts{SigHash: &digest}

	ok, err := ExecuteWithOpts([]Token{
		NewDataToken(sig), NewDataToken(pubKey), NewOpToken(OP_CHECKSIG),
	}, opts)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ExecuteWithOpts([]Token{
		NewDataToken(pubKey), NewDataToken(sig), NewOpToken(OP_CHECKSIG),
	}, opts)
	require.NoError(t, err)
	require.False(t, ok)
}
