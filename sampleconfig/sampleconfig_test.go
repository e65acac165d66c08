// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFileContents ensures the sample config starts with the application
// options section and leaves every option commented out.
func TestFileContents(t *testing.T) {
	t.Parallel()

	require.True(t, strings.HasPrefix(FileContents, "[Application Options]\n"))

	option := regexp.MustCompile(`(?m)^[a-z]+=`)
	require.Empty(t, option.FindAllString(FileContents, -1))

	for _, name := range []string{"logdir", "nofilelogging", "debuglevel",
		"sighash", "failaserror"} {

		require.Contains(t, FileContents, "; "+name+"=")
	}
}
