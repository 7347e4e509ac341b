// SPDX-License-Identifier: MPL-2.0

// Package cli contains CLI integration tests using testscript.
//
// The test binary doubles as sprockets-chain: scripts run it through
// "exec sprockets-chain", each in its own work directory with HOME and
// XDG_CONFIG_HOME inside it so no user configuration leaks in.
package cli

import (
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	cmd "github.com/sprocketschain/sprocketschain/cmd/sprockets-chain"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"sprockets-chain": cmd.Execute,
	})
}

func TestCLI(t *testing.T) {
	t.Parallel()

	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			env.Setenv("HOME", env.WorkDir)
			env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, ".config"))
			env.Setenv("NO_COLOR", "1")
			return nil
		},
		RequireExplicitExec: true,
	})
}
