package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/passgraph/internal/app"
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunGraphTest writes the given scripts to a temporary directory and runs the
// application over it with the compiled-in pass libraries.
func RunGraphTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunGraphTestWithConfig(context.Background(), t, files, app.Config{})
}

// RunGraphTestWithConfig is RunGraphTest with a caller supplied context, base
// configuration and pass modules. GraphPath is always the temporary
// directory; logging is forced to debug text and colors are disabled.
func RunGraphTestWithConfig(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...pass.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	graphDir := filepath.Join(tmpDir, "graphs")
	require.NoError(t, os.Mkdir(graphDir, 0o755))

	// Relative names such as "nested/a.hcl" create subdirectories.
	for name, content := range files {
		filePath := filepath.Join(graphDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg.GraphPath = graphDir
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	cfg.NoColor = true
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 4
	}

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	result := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application panicked | %v", r)
			}
		}()
		testApp, err := app.NewApp(out, logs, &cfg, modules...)
		if err != nil {
			result.Err = err
			return
		}
		result.App = testApp
		result.Err = testApp.Run(ctx)
	}()

	if os.Getenv("PASSGRAPH_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	result.Output = out.String()
	result.LogOutput = logs.String()
	return result
}
