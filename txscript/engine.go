// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ExecuteOpts houses the options that alter how a script is executed.  The zero
// value runs with stub signature verification.
type ExecuteOpts struct {
	// SigHash is the message digest signatures are verified against.  When
	// it is nil, OP_CHECKSIG and OP_CHECKSIGVERIFY treat every signature
	// as valid.
	SigHash *chainhash.Hash
}

// Engine is the virtual machine that executes a single tokenized script
// against a data stack.
type Engine struct {
	tokens    []Token
	tokenIdx  int
	dstack    *Stack // data stack
	condStack []bool
	opts      ExecuteOpts
}

// isBranchExecuting returns whether or not the current conditional branch is
// actively executing.  For example, when the data stack has an OP_FALSE on it
// and an OP_IF is encountered, the branch is inactive until an OP_ELSE or
// OP_ENDIF is encountered.  It properly handles nested conditionals since a
// branch is only executing when every enclosing conditional is as well.
func (vm *Engine) isBranchExecuting() bool {
	for _, executing := range vm.condStack {
		if !executing {
			return false
		}
	}
	return true
}

// executeToken performs execution on the passed token.  It takes into account
// whether or not it is hidden by conditionals.
func (vm *Engine) executeToken(tok Token) error {
	if tok.IsData() {
		if vm.isBranchExecuting() {
			vm.dstack.PushByteArray(tok.Data())
		}
		return nil
	}

	// Operation tokens are validated regardless of the branch so that a
	// hand built token can never slip through a skipped branch.
	op := tok.Opcode()
	if op.isPushData() {
		str := fmt.Sprintf("opcode %s is a data push and can not be "+
			"executed as an operation", op)
		return scriptError(ErrMalformedPush, str)
	}
	pop := &opcodeArray[op]
	if pop.opfunc == nil {
		return unsupportedOpcodeError(byte(op))
	}

	// Nothing left to do when this is not a conditional opcode and it is
	// not in an executing branch.
	if !vm.isBranchExecuting() && !pop.isConditional() {
		return nil
	}

	return pop.opfunc(pop, vm)
}

// done returns whether or not every token has been executed.
func (vm *Engine) done() bool {
	return vm.tokenIdx >= len(vm.tokens)
}

// validPC returns an error if the current token position is not valid for
// execution, nil otherwise.
func (vm *Engine) validPC() error {
	if vm.done() {
		return fmt.Errorf("past end of script %04x:%04x", vm.tokenIdx,
			len(vm.tokens))
	}
	return nil
}

// DisasmPC returns the string for the disassembly of the token that will be
// next to execute when Step is called.
func (vm *Engine) DisasmPC() (string, error) {
	if err := vm.validPC(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%04x: %s", vm.tokenIdx, vm.tokens[vm.tokenIdx]), nil
}

// Step executes the next token and moves the program counter to the next
// token in the script.  Step returns true once the final token was
// successfully executed, at which point the conditional nesting must be
// balanced.
//
// If an error is returned then the result of calling Step or any other method
// is undefined.
func (vm *Engine) Step() (done bool, err error) {
	if err := vm.validPC(); err != nil {
		return true, err
	}

	if err := vm.executeToken(vm.tokens[vm.tokenIdx]); err != nil {
		return true, err
	}

	vm.tokenIdx++
	if !vm.done() {
		return false, nil
	}

	// Illegal to have a conditional that is still open at the end of the
	// script.
	if len(vm.condStack) != 0 {
		str := fmt.Sprintf("end of script reached in conditional "+
			"execution with %d open conditionals", len(vm.condStack))
		return true, scriptError(ErrUnbalancedConditional, str)
	}
	return true, nil
}

// Execute runs every token in the script and returns nil once the whole script
// executed without error.  It does not evaluate the final stack; the data
// stack is left as the script left it.
func (vm *Engine) Execute() (err error) {
	for !vm.done() {
		log.Tracef("%v", newLogClosure(func() string {
			dis, err := vm.DisasmPC()
			if err != nil {
				return fmt.Sprintf("stepping (%v)", err)
			}
			return fmt.Sprintf("stepping %v", dis)
		}))

		if _, err = vm.Step(); err != nil {
			return err
		}

		log.Tracef("%v", newLogClosure(func() string {
			if vm.dstack.Depth() == 0 {
				return "Stack: <empty>"
			}
			return "Stack:\n" + vm.dstack.String()
		}))
	}

	return nil
}

// GetStack returns the contents of the data stack as an array where the last
// item in the array is the top of the stack.
func (vm *Engine) GetStack() [][]byte {
	return vm.dstack.Items()
}

// NewEngine returns a new script engine for the provided tokens which operates
// on the passed data stack.  A nil stack is replaced with a fresh empty one.
// The caller's stack is mutated in place as the script executes.
func NewEngine(tokens []Token, stack *Stack, opts ExecuteOpts) *Engine {
	if stack == nil {
		stack = NewStack()
	}
	return &Engine{
		tokens: tokens,
		dstack: stack,
		opts:   opts,
	}
}

// Execute runs the tokens on a fresh stack with stub signature verification and
// returns the final verdict.
func Execute(tokens []Token) (bool, error) {
	return ExecuteWithOpts(tokens, ExecuteOpts{})
}

// ExecuteWithOpts runs the tokens on a fresh stack using the provided options
// and returns the final verdict.  The verdict is false when the stack is empty
// and otherwise the boolean value of the top stack item.
func ExecuteWithOpts(tokens []Token, opts ExecuteOpts) (bool, error) {
	stack := NewStack()
	if err := ExecuteOnStack(tokens, stack, opts); err != nil {
		return false, err
	}
	return verdict(stack), nil
}

// ExecuteOnStack runs the tokens against the passed stack, leaving it in
// whatever state the script produced.  No verdict is computed.
func ExecuteOnStack(tokens []Token, stack *Stack, opts ExecuteOpts) error {
	return NewEngine(tokens, stack, opts).Execute()
}

// verdict pops the top stack item and returns its boolean value.  An empty
// stack is false.
func verdict(stack *Stack) bool {
	if stack.IsEmpty() {
		return false
	}
	v, _ := stack.PopBool()
	return v
}
