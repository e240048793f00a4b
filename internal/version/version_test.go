/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_LdflagsVersion(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "v1.2.3"
	assert.Equal(t, "v1.2.3", Get())
}

func TestInfo_Keys(t *testing.T) {
	info := Info()
	for _, key := range []string{"version", "gitCommit", "gitTag", "buildTime", "gitDirty"} {
		assert.Contains(t, info, key)
	}
}
