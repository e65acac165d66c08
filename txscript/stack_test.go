// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/itz-Pratham/mini-bitcoin-script/txscript"
	"github.com/stretchr/testify/require"
)

// TestAsBool ensures the truthiness rule treats every encoding of zero,
// including negative zero, as false and everything else as true.
func TestAsBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []byte
		want bool
	}{
		{nil, false},
		{[]byte{}, false},
		{[]byte{0x00}, false},
		{[]byte{0x80}, false},
		{[]byte{0x00, 0x80}, false},
		{[]byte{0x00, 0x00, 0x00}, false},
		{[]byte{0x00, 0x00, 0x80}, false},
		{[]byte{0x01}, true},
		{[]byte{0x81}, true},
		{[]byte{0x80, 0x00}, true},
		{[]byte{0x80, 0x80}, true},
		{[]byte{0x00, 0x01}, true},
		{[]byte{0x00, 0x81}, true},
		{[]byte{0x00, 0x00, 0x7f}, true},
	}

	for _, test := range tests {
		require.Equalf(t, test.want, txscript.AsBool(test.in),
			"AsBool(%x)", test.in)
	}
}

// TestStack tests that all of the stack operations work as expected.
func TestStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		before    [][]byte
		operation func(*txscript.Stack) error
		wantErr   bool
		after     [][]byte
	}{
		{
			"noop",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(stack *txscript.Stack) error {
				return nil
			},
			false,
			[][]byte{{1}, {2}, {3}, {4}, {5}},
		},
		{
			"peek underflow (byte)",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(stack *txscript.Stack) error {
				_, err := stack.PeekByteArray(5)
				return err
			},
			true,
			[][]byte{{1}, {2}, {3}, {4}, {5}},
		},
		{
			"peek underflow (bool)",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(stack *txscript.Stack) error {
				_, err := stack.PeekBool(5)
				return err
			},
			true,
			[][]byte{{1}, {2}, {3}, {4}, {5}},
		},
		{
			"peek negative index",
			[][]byte{{1}},
			func(stack *txscript.Stack) error {
				_, err := stack.PeekByteArray(-1)
				return err
			},
			true,
			[][]byte{{1}},
		},
		{
			"pop",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(stack *txscript.Stack) error {
				val, err := stack.PopByteArray()
				if err != nil {
					return err
				}
				if !bytes.Equal(val, []byte{5}) {
					return errors.New("not equal")
				}
				return err
			},
			false,
			[][]byte{{1}, {2}, {3}, {4}},
		},
		{
			"pop everything",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(stack *txscript.Stack) error {
				for i := 0; i < 5; i++ {
					_, err := stack.PopByteArray()
					if err != nil {
						return err
					}
				}
				return nil
			},
			false,
			nil,
		},
		{
			"pop underflow",
			nil,
			func(stack *txscript.Stack) error {
				_, err := stack.PopByteArray()
				return err
			},
			true,
			nil,
		},
		{
			"pop bool negative zero",
			[][]byte{{0x00, 0x80}},
			func(stack *txscript.Stack) error {
				val, err := stack.PopBool()
				if err != nil {
					return err
				}
				if val {
					return errors.New("negative zero is true")
				}
				return nil
			},
			false,
			nil,
		},
		{
			"push bool",
			nil,
			func(stack *txscript.Stack) error {
				stack.PushBool(true)
				stack.PushBool(false)
				return nil
			},
			false,
			[][]byte{{1}, nil},
		},
		{
			"remove at bottom",
			[][]byte{{1}, {2}, {3}},
			func(stack *txscript.Stack) error {
				val, err := stack.RemoveAt(2)
				if err != nil {
					return err
				}
				if !bytes.Equal(val, []byte{1}) {
					return errors.New("wrong item removed")
				}
				return nil
			},
			false,
			[][]byte{{2}, {3}},
		},
		{
			"nip second from top",
			[][]byte{{1}, {2}, {3}},
			func(stack *txscript.Stack) error {
				return stack.NipN(1)
			},
			false,
			[][]byte{{1}, {3}},
		},
		{
			"nip underflow",
			[][]byte{{1}},
			func(stack *txscript.Stack) error {
				return stack.NipN(1)
			},
			true,
			[][]byte{{1}},
		},
		{
			"tuck",
			[][]byte{{1}, {2}},
			func(stack *txscript.Stack) error {
				return stack.Tuck()
			},
			false,
			[][]byte{{2}, {1}, {2}},
		},
		{
			"tuck underflow leaves stack intact",
			[][]byte{{1}},
			func(stack *txscript.Stack) error {
				return stack.Tuck()
			},
			true,
			[][]byte{{1}},
		},
		{
			"drop 2",
			[][]byte{{1}, {2}, {3}},
			func(stack *txscript.Stack) error {
				return stack.DropN(2)
			},
			false,
			[][]byte{{1}},
		},
		{
			"drop 2 underflow leaves stack intact",
			[][]byte{{1}},
			func(stack *txscript.Stack) error {
				return stack.DropN(2)
			},
			true,
			[][]byte{{1}},
		},
		{
			"dup",
			[][]byte{{1}},
			func(stack *txscript.Stack) error {
				return stack.DupN(1)
			},
			false,
			[][]byte{{1}, {1}},
		},
		{
			"dup2",
			[][]byte{{1}, {2}},
			func(stack *txscript.Stack) error {
				return stack.DupN(2)
			},
			false,
			[][]byte{{1}, {2}, {1}, {2}},
		},
		{
			"dup2 underflow",
			[][]byte{{1}},
			func(stack *txscript.Stack) error {
				return stack.DupN(2)
			},
			true,
			[][]byte{{1}},
		},
		{
			"swap1",
			[][]byte{{1}, {2}, {3}},
			func(stack *txscript.Stack) error {
				return stack.SwapN(1)
			},
			false,
			[][]byte{{1}, {3}, {2}},
		},
		{
			"swap2",
			[][]byte{{1}, {2}, {3}, {4}},
			func(stack *txscript.Stack) error {
				return stack.SwapN(2)
			},
			false,
			[][]byte{{3}, {4}, {1}, {2}},
		},
		{
			"swap underflow leaves stack intact",
			[][]byte{{1}},
			func(stack *txscript.Stack) error {
				return stack.SwapN(1)
			},
			true,
			[][]byte{{1}},
		},
		{
			"over1",
			[][]byte{{1}, {2}, {3}},
			func(stack *txscript.Stack) error {
				return stack.OverN(1)
			},
			false,
			[][]byte{{1}, {2}, {3}, {2}},
		},
		{
			"over2",
			[][]byte{{1}, {2}, {3}, {4}},
			func(stack *txscript.Stack) error {
				return stack.OverN(2)
			},
			false,
			[][]byte{{1}, {2}, {3}, {4}, {1}, {2}},
		},
		{
			"over underflow",
			[][]byte{{1}},
			func(stack *txscript.Stack) error {
				return stack.OverN(1)
			},
			true,
			[][]byte{{1}},
		},
	}

	for _, test := range tests {
		stack := txscript.NewStack(test.before...)

		err := test.operation(stack)
		if test.wantErr {
			if !txscript.IsErrorCode(err, txscript.ErrStackUnderflow) {
				t.Errorf("%s: want ErrStackUnderflow, got %v",
					test.name, err)
			}
		} else if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}

		if !equalStacks(stack.Items(), test.after) {
			t.Errorf("%s: stack mismatch\ngot: %v\nwant: %v",
				test.name, spew.Sdump(stack.Items()),
				spew.Sdump(test.after))
		}
	}
}

// TestStackEmpty checks the depth helpers on the zero value.
func TestStackEmpty(t *testing.T) {
	t.Parallel()

	var stack txscript.Stack
	require.True(t, stack.IsEmpty())
	require.Equal(t, 0, stack.Depth())

	stack.PushByteArray(nil)
	require.False(t, stack.IsEmpty())
	require.Equal(t, 1, stack.Depth())
	require.Contains(t, stack.String(), "<empty>")
}

// equalStacks compares two stacks item by item, treating nil and empty items
// as equal.
func equalStacks(a, b [][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
