package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/draalcore/devtool/internal/app"
	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/testutil"
)

// testEnv bundles a container built on mocks with the buffers commands write to.
type testEnv struct {
	container *app.Container
	executor  *testutil.MockCommandExecutor
	loader    *testutil.MockConfigLoader
	git       *testutil.MockGit
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		executor: testutil.NewMockCommandExecutor(),
		loader:   testutil.NewMockConfigLoader(),
		git:      testutil.NewMockGit(),
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}
	env.container = app.NewWithDeps(app.Config{}, env.git, env.loader, testutil.NewMockConfigManager(),
		func(_, _ io.Writer) domain.CommandExecutor { return env.executor })
	return env
}

// run executes the root command with args.
func (e *testEnv) run(args ...string) error {
	root := NewRootCommand(e.container, "test-version")
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)
	root.SetArgs(args)
	return root.Execute()
}
