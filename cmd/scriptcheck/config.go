// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/itz-Pratham/mini-bitcoin-script/internal/log"
	"github.com/itz-Pratham/mini-bitcoin-script/internal/version"
	"github.com/itz-Pratham/mini-bitcoin-script/sampleconfig"
	"github.com/itz-Pratham/mini-bitcoin-script/txscript"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "scriptcheck.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "scriptcheck.log"
	defaultLogLevel       = "info"
)

var (
	scriptcheckHomeDir = btcutil.AppDataDir("scriptcheck", false)
	defaultConfigFile  = filepath.Join(scriptcheckHomeDir, defaultConfigFilename)
	defaultLogDir      = filepath.Join(scriptcheckHomeDir, defaultLogDirname)
)

// config defines the configuration options for scriptcheck.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion   bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile    string `short:"C" long:"configfile" description:"Path to configuration file"`
	LogDir        string `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	SigHash       string `long:"sighash" description:"Hex encoded 32-byte message digest; enables ECDSA verification for OP_CHECKSIG"`
	FailAsError   bool   `long:"failaserror" description:"Report a false verdict as an error and exit with a non-zero status"`

	execOpts txscript.ExecuteOpts
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(scriptcheckHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// createDefaultConfigFile writes the sample config to destinationPath,
// creating the parent directory as needed.
func createDefaultConfigFile(destinationPath string) error {
	err := os.MkdirAll(filepath.Dir(destinationPath), 0700)
	if err != nil {
		return err
	}
	return os.WriteFile(destinationPath, []byte(sampleconfig.FileContents),
		0600)
}

// parseSigHash decodes the hex encoded message digest passed with --sighash.
// The digest is given in the byte order it is signed in, so it is copied into
// the hash as is rather than reversed the way chainhash.NewHashFromStr does.
func parseSigHash(s string) (*chainhash.Hash, error) {
	b, err := txscript.DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return chainhash.NewHash(b)
}

// errShowVersion and errShowSubsystems are returned by loadConfig when the
// caller asked for information instead of a command to run.
var (
	errShowVersion    = fmt.Errorf("show version")
	errShowSubsystems = fmt.Errorf("show subsystems")
)

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in functioning properly without any config settings
// while still allowing the user to override settings with config files and
// command line options.  Command line options always take precedence.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message can be ignored here since they will be caught by the
	// final parse below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		return nil, nil, errShowVersion
	}

	// Write the sample config to the default location on first run.
	if preCfg.ConfigFile == defaultConfigFile && !fileExists(defaultConfigFile) {
		err := createDefaultConfigFile(defaultConfigFile)
		if err != nil {
			log.SchkLog.Warnf("Error creating a default config file: %v",
				err)
		}
	}

	// Load additional config from file.  A missing file is not an error
	// since the defaults are sufficient.
	parser := newConfigParser(&cfg, flags.PassDoubleDash|flags.HelpFlag)
	err = flags.NewIniParser(parser).ParseFile(cleanAndExpandPath(preCfg.ConfigFile))
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, nil, fmt.Errorf("error parsing config file: %v", err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		return nil, nil, errShowSubsystems
	}

	// Parse, validate, and set debug log level(s).
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, fmt.Errorf("loadConfig: %v", err)
	}

	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	// A digest switches OP_CHECKSIG from the stub to real verification.
	if cfg.SigHash != "" {
		hash, err := parseSigHash(cfg.SigHash)
		if err != nil {
			return nil, nil, fmt.Errorf("loadConfig: invalid --sighash: %v",
				err)
		}
		cfg.execOpts.SigHash = hash
	}

	return &cfg, remainingArgs, nil
}

// newConfigParser returns a go-flags parser for cfg with the command usage
// filled in.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	parser := flags.NewParser(cfg, options)
	parser.Usage = "[OPTIONS] <command> <args...>\n\n" + commandUsage()
	return parser
}

// appName returns the name of the running binary without any extension.
func appName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// versionString returns the line printed for --version.
func versionString() string {
	return fmt.Sprintf("%s version %s", appName(), version.String())
}
