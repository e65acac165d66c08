// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNormalizeVerString ensures invalid semantic version characters are
// stripped.
func TestNormalizeVerString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		allowDot bool
		want     string
	}{
		{"beta", false, "beta"},
		{"rc.1", false, "rc1"},
		{"rc.1", true, "rc.1"},
		{"a b+c_d", true, "abcd"},
		{"", true, ""},
	}

	for _, test := range tests {
		require.Equal(t, test.want, normalizeVerString(test.in,
			test.allowDot), test.in)
	}
}

// TestString ensures the version string carries the numeric version and the
// default pre-release tag.
func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0.1.0-beta", String())
}
