// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOpcodeNames ensures every opcode value is given the expected name,
// including the data push opcodes and unsupported values that only show up in
// error messages.
func TestOpcodeNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op   Opcode
		name string
	}{
		{0x00, "OP_0"},
		{0x4f, "OP_1NEGATE"},
		{0x51, "OP_1"},
		{0x52, "OP_2"},
		{0x53, "OP_3"},
		{0x54, "OP_4"},
		{0x55, "OP_5"},
		{0x56, "OP_6"},
		{0x57, "OP_7"},
		{0x58, "OP_8"},
		{0x59, "OP_9"},
		{0x5a, "OP_10"},
		{0x5b, "OP_11"},
		{0x5c, "OP_12"},
		{0x5d, "OP_13"},
		{0x5e, "OP_14"},
		{0x5f, "OP_15"},
		{0x60, "OP_16"},
		{0x61, "OP_NOP"},
		{0x63, "OP_IF"},
		{0x64, "OP_NOTIF"},
		{0x67, "OP_ELSE"},
		{0x68, "OP_ENDIF"},
		{0x69, "OP_VERIFY"},
		{0x6a, "OP_RETURN"},
		{0x6d, "OP_2DROP"},
		{0x6e, "OP_2DUP"},
		{0x74, "OP_DEPTH"},
		{0x75, "OP_DROP"},
		{0x76, "OP_DUP"},
		{0x77, "OP_NIP"},
		{0x78, "OP_OVER"},
		{0x7c, "OP_SWAP"},
		{0x7d, "OP_TUCK"},
		{0x82, "OP_SIZE"},
		{0x87, "OP_EQUAL"},
		{0x88, "OP_EQUALVERIFY"},
		{0x91, "OP_NOT"},
		{0xa6, "OP_RIPEMD160"},
		{0xa8, "OP_SHA256"},
		{0xa9, "OP_HASH160"},
		{0xaa, "OP_HASH256"},
		{0xac, "OP_CHECKSIG"},
		{0xad, "OP_CHECKSIGVERIFY"},
	}

	supported := 0
	for i := 0; i < 256; i++ {
		if Opcode(i).IsSupported() {
			supported++
		}
	}
	require.Equal(t, len(tests), supported, "supported opcode count")

	for _, test := range tests {
		require.Truef(t, test.op.IsSupported(), "%s not supported",
			test.name)
		require.Equal(t, test.name, test.op.String())
		require.Equal(t, test.op, opcodeArray[test.op].value)
	}

	// Names of values that are not executable operations.
	unsupported := []struct {
		op   Opcode
		name string
	}{
		{0x01, "OP_DATA_1"},
		{0x14, "OP_DATA_20"},
		{0x4b, "OP_DATA_75"},
		{0x4c, "OP_PUSHDATA1"},
		{0x4d, "OP_PUSHDATA2"},
		{0x4e, "OP_PUSHDATA4"},
		{0x50, "OP_RESERVED"},
		{0x62, "OP_UNKNOWN98"},
		{0xba, "OP_UNKNOWN186"},
		{0xff, "OP_UNKNOWN255"},
	}
	for _, test := range unsupported {
		require.False(t, test.op.IsSupported())
		require.Equal(t, test.name, test.op.String())
	}
}

// TestOpcodeTable ensures every populated instruction table entry is keyed by
// its own value, has a unique name and a handler, and that only the expected
// entries are conditionals.
func TestOpcodeTable(t *testing.T) {
	t.Parallel()

	names := make(map[string]Opcode)
	for i := range opcodeArray {
		pop := &opcodeArray[i]
		if pop.opfunc == nil {
			require.Emptyf(t, pop.name, "unsupported opcode %#x has a "+
				"name", i)
			continue
		}

		require.Equal(t, Opcode(i), pop.value)
		if prev, ok := names[pop.name]; ok {
			t.Fatalf("opcode name %s used by both %#x and %#x",
				pop.name, byte(prev), i)
		}
		names[pop.name] = pop.value

		wantConditional := pop.value == OP_IF || pop.value == OP_NOTIF ||
			pop.value == OP_ELSE || pop.value == OP_ENDIF
		require.Equal(t, wantConditional, pop.isConditional(), pop.name)
	}
}

// TestOpcodeRoundTrip ensures every byte value either tokenizes into an
// operation that encodes back to the same byte or is rejected as unsupported
// with the offending byte retained.  Data push bytes are skipped since they are
// not operations on their own.
func TestOpcodeRoundTrip(t *testing.T) {
	t.Parallel()

	for i := 0; i < 256; i++ {
		op := Opcode(i)
		if op.isPushData() {
			continue
		}

		tokens, err := ParseScript([]byte{byte(i)})
		if !op.IsSupported() {
			require.Truef(t, IsErrorCode(err, ErrUnsupportedOpcode),
				"byte %#x: got %v", i, err)
			require.Equal(t, byte(i), err.(Error).Byte)
			continue
		}

		require.NoError(t, err)
		require.Len(t, tokens, 1)
		require.False(t, tokens[0].IsData())
		require.Equal(t, op, tokens[0].Opcode())

		script, err := UnparseScript(tokens)
		require.NoError(t, err)
		require.Equal(t, []byte{byte(i)}, script)
	}
}
