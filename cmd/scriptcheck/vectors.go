// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/itz-Pratham/mini-bitcoin-script/txscript"
	"github.com/pkg/errors"
)

// vectorFile is the layout of a TOML vector file.  Each vector is a
// [[vector]] table.
type vectorFile struct {
	Vectors []scriptVector `toml:"vector"`
}

// scriptVector describes a single script vector.  Exactly one of Script and
// Locking must be given: Script selects single script execution while Locking
// selects two-phase validation with Unlocking as the unlocking script.
//
// Expected is "true" or "false" for a verdict, or the name of the error code
// the vector is expected to fail with, such as "ErrVerify".
type scriptVector struct {
	Name      string  `toml:"name"`
	Script    *string `toml:"script"`
	Unlocking string  `toml:"unlocking"`
	Locking   *string `toml:"locking"`
	SigHash   string  `toml:"sighash"`
	Expected  string  `toml:"expected"`
}

// loadVectorFile decodes the vector file at path and rejects any keys that do
// not map to a vector field.
func loadVectorFile(path string) ([]scriptVector, error) {
	var vf vectorFile
	md, err := toml.DecodeFile(path, &vf)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load vectors from %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, errors.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	return vf.Vectors, nil
}

// checkExpected ensures the expected outcome of a vector is one that
// evaluate can produce.
func checkExpected(expected string) error {
	switch expected {
	case "true", "false":
		return nil
	}
	if _, ok := txscript.ErrorCodeFromString(expected); !ok {
		return errors.Errorf("invalid expected result %q", expected)
	}
	return nil
}

// evaluate runs the vector and returns its outcome in the same form as the
// Expected field.  Errors that are not script errors, such as an invalid
// vector definition, are returned as such.
func (v *scriptVector) evaluate(opts txscript.ExecuteOpts) (string, error) {
	if v.SigHash != "" {
		hash, err := parseSigHash(v.SigHash)
		if err != nil {
			return "", errors.Wrap(err, "invalid sighash")
		}
		opts.SigHash = hash
	}

	var valid bool
	var err error
	switch {
	case v.Script != nil && v.Locking != nil:
		return "", errors.New("both script and locking given")

	case v.Script != nil:
		var tokens []txscript.Token
		tokens, err = txscript.ParseScriptHex(*v.Script)
		if err == nil {
			valid, err = txscript.ExecuteWithOpts(tokens, opts)
		}

	case v.Locking != nil:
		var unlocking, locking []byte
		unlocking, err = txscript.DecodeHex(v.Unlocking)
		if err == nil {
			locking, err = txscript.DecodeHex(*v.Locking)
		}
		if err == nil {
			valid, err = txscript.ValidateWithOpts(unlocking, locking,
				opts)
		}

	default:
		return "", errors.New("neither script nor locking given")
	}

	if err != nil {
		var serr txscript.Error
		if !errors.As(err, &serr) {
			return "", err
		}
		return serr.ErrorCode.String(), nil
	}
	if valid {
		return "true", nil
	}
	return "false", nil
}

// runVectors runs each vector, printing a PASS or FAIL line per vector and a
// closing summary line, and returns an error when any vector did not produce its expected outcome.
func runVectors(w io.Writer, cfg *config, vectors []scriptVector) error {
	var failed []string
	for i := range vectors {
		v := &vectors[i]
		name := v.Name
		if name == "" {
			name = fmt.Sprintf("vector #%d", i)
		}

		if err := checkExpected(v.Expected); err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", name, err)
			failed = append(failed, name)
			continue
		}

		got, err := v.evaluate(cfg.execOpts)
		switch {
		case err != nil:
			fmt.Fprintf(w, "FAIL %s: %v\n", name, err)
			failed = append(failed, name)

		case got != v.Expected:
			fmt.Fprintf(w, "FAIL %s: got %s, want %s\n", name, got,
				v.Expected)
			failed = append(failed, name)

		default:
			fmt.Fprintf(w, "PASS %s\n", name)
		}
	}

	fmt.Fprintf(w, "%d of %d vectors passed\n", len(vectors)-len(failed),
		len(vectors))
	if len(failed) != 0 {
		return errors.Errorf("%d of %d vectors failed: %s", len(failed),
			len(vectors), strings.Join(failed, ", "))
	}
	return nil
}

// runVectorFile loads the vector file at path and runs every vector in it.
func runVectorFile(w io.Writer, cfg *config, path string) error {
	vectors, err := loadVectorFile(cleanAndExpandPath(path))
	if err != nil {
		return err
	}
	if len(vectors) == 0 {
		return errors.Errorf("no vectors found in %s", path)
	}
	return runVectors(w, cfg, vectors)
}
