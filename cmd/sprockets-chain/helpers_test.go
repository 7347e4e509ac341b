// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"

	"github.com/sprocketschain/sprocketschain/internal/config"
	"github.com/sprocketschain/sprocketschain/internal/testutil"
)

const workRoot = "/work"

type (
	// staticConfig is a ConfigProvider returning a fixed result.
	staticConfig struct {
		cfg    *config.Config
		err    error
		source string
	}

	testApp struct {
		*App
		out    *bytes.Buffer
		errOut *bytes.Buffer
	}
)

func (s *staticConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cfg, nil
}

func (s *staticConfig) Source(config.LoadOptions) (string, error) { return s.source, nil }

// newTestApp builds an App over an in-memory tree rooted at /work. A nil cfg
// means the default configuration.
func newTestApp(t *testing.T, files map[string]string, cfg *config.Config) *testApp {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	fsys := afero.NewMemMapFs()
	testutil.WriteFiles(t, fsys, workRoot, files)

	var out, errOut bytes.Buffer
	app, err := NewApp(Dependencies{
		Config:    &staticConfig{cfg: cfg},
		Fs:        fsys,
		Getenv:    func(string) string { return "" },
		ConfigDir: t.TempDir(),
		Stdout:    &out,
		Stderr:    &errOut,
	})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	return &testApp{App: app, out: &out, errOut: &errOut}
}

func (a *testApp) run(args ...string) error {
	root := NewRootCommand(a.App)
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return root.ExecuteContext(context.Background())
}
