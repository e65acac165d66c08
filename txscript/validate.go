// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

// Validate runs the two-phase validation of an unlocking script against a
// locking script with stub signature verification.  See ValidateWithOpts.
func Validate(unlocking, locking []byte) (bool, error) {
	return ValidateWithOpts(unlocking, locking, ExecuteOpts{})
}

// ValidateWithOpts runs the two-phase validation of an unlocking script against
// a locking script.
//
// Both scripts are tokenized before anything executes, so a parse failure in
// either one is returned without running any code.  The unlocking script then
// runs on a fresh stack and must itself leave every conditional closed.  The
// locking script runs next on the stack the unlocking script left behind, and
// the verdict is the boolean value of the top item once both have finished.
// The locking script never runs when the unlocking script fails.
//
// The scripts are never concatenated, so neither one can open a conditional
// that the other closes, and an OP_RETURN in the unlocking script can not skip
// any part of the locking script.
func ValidateWithOpts(unlocking, locking []byte, opts ExecuteOpts) (bool, error) {
	unlockingTokens, err := ParseScript(unlocking)
	if err != nil {
		return false, err
	}
	lockingTokens, err := ParseScript(locking)
	if err != nil {
		return false, err
	}

	stack := NewStack()

	log.Debugf("executing unlocking script (%d tokens)", len(unlockingTokens))
	if err := ExecuteOnStack(unlockingTokens, stack, opts); err != nil {
		log.Debugf("unlocking script failed: %v", err)
		return false, err
	}

	log.Debugf("executing locking script (%d tokens) on stack of depth %d",
		len(lockingTokens), stack.Depth())
	if err := ExecuteOnStack(lockingTokens, stack, opts); err != nil {
		log.Debugf("locking script failed: %v", err)
		return false, err
	}

	valid := verdict(stack)
	if !valid {
		log.Tracef("%v", newLogClosure(func() string {
			return fmt.Sprintf("scripts failed: unlocking: %s\n"+
				"locking: %s", DisasmTokens(unlockingTokens),
				DisasmTokens(lockingTokens))
		}))
	}
	return valid, nil
}

// VerifyScripts runs the two-phase validation and reports a false verdict as an
// ErrScriptFailed error, so that nil is returned only for scripts that
// validate.
func VerifyScripts(unlocking, locking []byte, opts ExecuteOpts) error {
	valid, err := ValidateWithOpts(unlocking, locking, opts)
	if err != nil {
		return err
	}
	if !valid {
		return scriptError(ErrScriptFailed, "false stack entry at end of "+
			"script execution")
	}
	return nil
}
