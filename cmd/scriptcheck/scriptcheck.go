// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/itz-Pratham/mini-bitcoin-script/internal/log"
	"github.com/itz-Pratham/mini-bitcoin-script/txscript"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// command describes one of the subcommands understood by scriptcheck.
type command struct {
	usage   string
	numArgs int
	handler func(w io.Writer, cfg *config, args []string) error
}

// commands maps each subcommand name to its handler.
var commands = map[string]command{
	"disasm": {
		usage:   "<script-hex>",
		numArgs: 1,
		handler: disasmCmd,
	},
	"exec": {
		usage:   "<script-hex>",
		numArgs: 1,
		handler: execCmd,
	},
	"validate": {
		usage:   "<unlocking-hex> <locking-hex>",
		numArgs: 2,
		handler: validateCmd,
	},
	"vectors": {
		usage:   "<file.toml>",
		numArgs: 1,
		handler: vectorsCmd,
	},
}

// supportedCommands returns a sorted slice of the subcommand names.
func supportedCommands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// commandUsage returns the usage line of every subcommand.
func commandUsage() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range supportedCommands() {
		fmt.Fprintf(&b, "  %s %s\n", name, commands[name].usage)
	}
	return b.String()
}

// run dispatches the remaining command line arguments to the requested
// subcommand, writing its output to w.
func run(w io.Writer, cfg *config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command specified -- supported commands %v",
			supportedCommands())
	}

	name, args := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q -- supported commands %v",
			name, supportedCommands())
	}
	if len(args) != cmd.numArgs {
		return fmt.Errorf("usage: %s %s", name, cmd.usage)
	}

	log.SchkLog.Debugf("Running %s with %d argument(s)", name, len(args))
	return cmd.handler(w, cfg, args)
}

// disasmCmd prints every token of a script on its own line prefixed by its
// byte offset, followed by the one line disassembly.
func disasmCmd(w io.Writer, _ *config, args []string) error {
	script, err := txscript.DecodeHex(args[0])
	if err != nil {
		return errors.Wrap(err, "unable to decode script")
	}

	var offset int
	tokenizer := txscript.MakeScriptTokenizer(script)
	for tokenizer.Next() {
		fmt.Fprintf(w, "%04x: %v\n", offset, tokenizer.Token())
		offset = tokenizer.ByteIndex()
	}

	disasm, err := txscript.DisasmString(script)
	fmt.Fprintln(w, disasm)
	if err != nil {
		return errors.Wrapf(err, "script failed to parse at offset %d",
			offset)
	}
	return nil
}

// execCmd executes a single script on an empty stack and prints the final
// stack and verdict.
func execCmd(w io.Writer, cfg *config, args []string) error {
	tokens, err := txscript.ParseScriptHex(args[0])
	if err != nil {
		return errors.Wrap(err, "unable to parse script")
	}

	vm := txscript.NewEngine(tokens, nil, cfg.execOpts)
	if err := vm.Execute(); err != nil {
		return errors.Wrap(err, "script execution failed")
	}

	stack := vm.GetStack()
	writeStack(w, stack)
	valid := len(stack) > 0 && txscript.AsBool(stack[len(stack)-1])
	return reportVerdict(w, cfg, valid)
}

// validateCmd runs the two-phase validation of an unlocking script against a
// locking script and prints the verdict.
func validateCmd(w io.Writer, cfg *config, args []string) error {
	unlocking, err := txscript.DecodeHex(args[0])
	if err != nil {
		return errors.Wrap(err, "unable to decode unlocking script")
	}
	locking, err := txscript.DecodeHex(args[1])
	if err != nil {
		return errors.Wrap(err, "unable to decode locking script")
	}

	valid, err := txscript.ValidateWithOpts(unlocking, locking, cfg.execOpts)
	if err != nil {
		return errors.Wrap(err, "validation failed")
	}
	return reportVerdict(w, cfg, valid)
}

// vectorsCmd runs every vector in a TOML vector file.
func vectorsCmd(w io.Writer, cfg *config, args []string) error {
	return runVectorFile(w, cfg, args[0])
}

// writeStack prints the stack items from the bottom to the top.
func writeStack(w io.Writer, stack [][]byte) {
	if len(stack) == 0 {
		fmt.Fprintln(w, "stack: <empty>")
		return
	}
	fmt.Fprintln(w, "stack:")
	for i, item := range stack {
		fmt.Fprintf(w, "  %02d: %x\n", i, item)
	}
}

// reportVerdict prints the verdict and, when requested by --failaserror,
// turns a false verdict into an ErrScriptFailed error.
func reportVerdict(w io.Writer, cfg *config, valid bool) error {
	fmt.Fprintf(w, "verdict: %v\n", valid)
	if !valid && cfg.FailAsError {
		return txscript.Error{
			ErrorCode:   txscript.ErrScriptFailed,
			Description: "script verdict is false",
		}
	}
	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	cfg, args, err := loadConfig(os.Args[1:])
	switch {
	case err == errShowVersion:
		fmt.Println(versionString())
		return nil

	case err == errShowSubsystems:
		fmt.Println("Supported subsystems", log.SupportedSubsystems())
		return nil

	case err != nil:
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil
		}
		return err
	}

	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			return err
		}
		defer log.CloseLogRotator()
	}

	return run(os.Stdout, cfg, args)
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
