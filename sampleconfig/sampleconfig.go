// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

// FileContents is a string containing the commented example config for
// scriptcheck.
const FileContents = `[Application Options]

; ------------------------------------------------------------------------------
; Logging
; ------------------------------------------------------------------------------

; The directory to store the rotated log files.  The default is
; ~/.scriptcheck/logs on POSIX OSes, $LOCALAPPDATA/Scriptcheck/logs on Windows,
; ~/Library/Application Support/Scriptcheck/logs on macOS, and
; $home/scriptcheck/logs on Plan9.  Environment variables are expanded so they
; may be used.  NOTE: Windows environment variables are typically %VARIABLE%,
; but they must be accessed with $VARIABLE here.
; logdir=~/.scriptcheck/logs

; Disable writing log output to the rotated log files.  Log output still goes
; to standard output.
; nofilelogging=1

; Debug logging level.
; Valid levels are {trace, debug, info, warn, error, critical, off}
; You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set
; log level for individual subsystems.  Use scriptcheck --debuglevel=show to
; list available subsystems.
; debuglevel=info

; The SCRP subsystem logs every executed token and the resulting stack at the
; trace level.
; debuglevel=SCHK=info,SCRP=trace


; ------------------------------------------------------------------------------
; Script execution
; ------------------------------------------------------------------------------

; Hex encoded 32-byte message digest that signatures are checked against.  When
; it is not set, OP_CHECKSIG and OP_CHECKSIGVERIFY accept every signature.
; sighash=

; Report a false verdict as an error and exit with a non-zero status.
; failaserror=1
`
