// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"fmt"
)

// AsBool gets the boolean value of the byte array.
//
// The empty byte array is false.  Otherwise the value is false only when every
// byte other than the last is zero and the last byte is either zero or 0x80,
// the latter being the encoding of negative zero.  Everything else is true.
func AsBool(t []byte) bool {
	for i := range t {
		if t[i] != 0 {
			// Negative 0 is also considered false.
			if i == len(t)-1 && t[i] == 0x80 {
				return false
			}
			return true
		}
	}
	return false
}

// fromBool converts a boolean into the appropriate byte array.
func fromBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return nil
}

// Stack represents a stack of immutable objects to be used with bitcoin
// scripts.  Objects may be shared, therefore in usage if a value is to be
// changed it *must* be deep-copied first to avoid changing other values on the
// stack.
//
// The zero value is an empty stack ready for use.  Operations that fail never
// leave the stack partially modified.
type Stack struct {
	stk [][]byte
}

// NewStack returns a stack holding the passed items, the last item being the
// top of the stack.
func NewStack(items ...[]byte) *Stack {
	s := &Stack{stk: make([][]byte, 0, len(items))}
	s.stk = append(s.stk, items...)
	return s
}

// Depth returns the number of items on the stack.
func (s *Stack) Depth() int {
	return len(s.stk)
}

// IsEmpty returns whether or not the stack has no items.
func (s *Stack) IsEmpty() bool {
	return len(s.stk) == 0
}

// requireDepth returns an ErrStackUnderflow error when fewer than n items are
// on the stack.
func (s *Stack) requireDepth(n int) error {
	if len(s.stk) < n {
		str := fmt.Sprintf("operation requires %d items, but stack "+
			"only has %d", n, len(s.stk))
		return scriptError(ErrStackUnderflow, str)
	}
	return nil
}

// PushByteArray adds the given back array to the top of the stack.
//
// Stack transformation: [... x1 x2] -> [... x1 x2 data]
func (s *Stack) PushByteArray(so []byte) {
	s.stk = append(s.stk, so)
}

// PushBool converts the provided boolean to a suitable byte array then pushes
// it onto the top of the stack.  True is encoded as [0x01] and false as the
// empty byte array.
//
// Stack transformation: [... x1 x2] -> [... x1 x2 bool]
func (s *Stack) PushBool(val bool) {
	s.PushByteArray(fromBool(val))
}

// PopByteArray pops the value off the top of the stack and returns it.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2]
func (s *Stack) PopByteArray() ([]byte, error) {
	return s.RemoveAt(0)
}

// PopBool pops the value off the top of the stack, converts it into a bool, and
// returns it.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2]
func (s *Stack) PopBool() (bool, error) {
	so, err := s.PopByteArray()
	if err != nil {
		return false, err
	}

	return AsBool(so), nil
}

// PeekByteArray returns the Nth item on the stack without removing it.  An
// index of zero refers to the top of the stack.
func (s *Stack) PeekByteArray(idx int) ([]byte, error) {
	sz := len(s.stk)
	if idx < 0 || idx >= sz {
		str := fmt.Sprintf("index %d is invalid for stack size %d", idx,
			sz)
		return nil, scriptError(ErrStackUnderflow, str)
	}

	return s.stk[sz-idx-1], nil
}

// PeekBool returns the Nth item on the stack as a bool without removing it.
func (s *Stack) PeekBool(idx int) (bool, error) {
	so, err := s.PeekByteArray(idx)
	if err != nil {
		return false, err
	}

	return AsBool(so), nil
}

// RemoveAt removes the Nth item on the stack and returns it.  An index of zero
// refers to the top of the stack.
//
// Stack transformation:
// RemoveAt(0): [... x1 x2 x3] -> [... x1 x2]
// RemoveAt(1): [... x1 x2 x3] -> [... x1 x3]
// RemoveAt(2): [... x1 x2 x3] -> [... x2 x3]
func (s *Stack) RemoveAt(idx int) ([]byte, error) {
	sz := len(s.stk)
	if idx < 0 || idx > sz-1 {
		str := fmt.Sprintf("index %d is invalid for stack size %d", idx,
			sz)
		return nil, scriptError(ErrStackUnderflow, str)
	}

	so := s.stk[sz-idx-1]
	if idx == 0 {
		s.stk = s.stk[:sz-1]
	} else if idx == sz-1 {
		s1 := make([][]byte, sz-1)
		copy(s1, s.stk[1:])
		s.stk = s1
	} else {
		s1 := s.stk[sz-idx : sz]
		s.stk = s.stk[:sz-idx-1]
		s.stk = append(s.stk, s1...)
	}
	return so, nil
}

// NipN removes the Nth object on the stack
//
// Stack transformation:
// NipN(0): [... x1 x2 x3] -> [... x1 x2]
// NipN(1): [... x1 x2 x3] -> [... x1 x3]
// NipN(2): [... x1 x2 x3] -> [... x2 x3]
func (s *Stack) NipN(idx int) error {
	_, err := s.RemoveAt(idx)
	return err
}

// Tuck copies the item at the top of the stack and inserts it before the 2nd
// to top item.
//
// Stack transformation: [... x1 x2] -> [... x2 x1 x2]
func (s *Stack) Tuck() error {
	if err := s.requireDepth(2); err != nil {
		return err
	}

	so2, _ := s.PopByteArray()
	so1, _ := s.PopByteArray()
	s.PushByteArray(so2) // stack [... x2]
	s.PushByteArray(so1) // stack [... x2 x1]
	s.PushByteArray(so2) // stack [... x2 x1 x2]

	return nil
}

// DropN removes the top N items from the stack.
//
// Stack transformation:
// DropN(1): [... x1 x2] -> [... x1]
// DropN(2): [... x1 x2] -> [...]
func (s *Stack) DropN(n int) error {
	if err := s.requireDepth(n); err != nil {
		return err
	}

	s.stk = s.stk[:len(s.stk)-n]
	return nil
}

// DupN duplicates the top N items on the stack.
//
// Stack transformation:
// DupN(1): [... x1 x2] -> [... x1 x2 x2]
// DupN(2): [... x1 x2] -> [... x1 x2 x1 x2]
func (s *Stack) DupN(n int) error {
	if err := s.requireDepth(n); err != nil {
		return err
	}

	// Iteratively duplicate the value n-1 down the stack n times.
	// This leaves an in-order duplicate of the top n items on the stack.
	for i := n; i > 0; i-- {
		so, _ := s.PeekByteArray(n - 1)
		s.PushByteArray(so)
	}
	return nil
}

// SwapN swaps the top N items on the stack with those below them.
//
// Stack transformation:
// SwapN(1): [... x1 x2] -> [... x2 x1]
// SwapN(2): [... x1 x2 x3 x4] -> [... x3 x4 x1 x2]
func (s *Stack) SwapN(n int) error {
	if err := s.requireDepth(2 * n); err != nil {
		return err
	}

	entry := 2*n - 1
	for i := n; i > 0; i-- {
		// Swap 2n-1th entry to top.
		so, _ := s.RemoveAt(entry)
		s.PushByteArray(so)
	}
	return nil
}

// OverN copies N items N items back to the top of the stack.
//
// Stack transformation:
// OverN(1): [... x1 x2 x3] -> [... x1 x2 x3 x2]
// OverN(2): [... x1 x2 x3 x4] -> [... x1 x2 x3 x4 x1 x2]
func (s *Stack) OverN(n int) error {
	if err := s.requireDepth(2 * n); err != nil {
		return err
	}

	// Copy 2n-1th entry to top of the stack.
	entry := 2*n - 1
	for ; n > 0; n-- {
		so, _ := s.PeekByteArray(entry)
		s.PushByteArray(so)
	}

	return nil
}

// Items returns a copy of the stack contents ordered from bottom to top.
func (s *Stack) Items() [][]byte {
	items := make([][]byte, len(s.stk))
	copy(items, s.stk)
	return items
}

// String returns the stack in a readable format.
func (s *Stack) String() string {
	var result string
	for _, stack := range s.stk {
		if len(stack) == 0 {
			result += "00000000  <empty>\n"
		}
		result += hex.Dump(stack)
	}

	return result
}
