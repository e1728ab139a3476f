package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// safeBuffer is a thread-safe buffer for capturing log output in tests.
type safeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// newTestApp creates an app with debug logging and colors disabled.
func newTestApp(t *testing.T, cfg Config) (*App, *safeBuffer, *safeBuffer) {
	t.Helper()
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	cfg.NoColor = true

	out, logs := &safeBuffer{}, &safeBuffer{}
	a, err := NewApp(out, logs, &cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("PASSGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs
}

// runBuiltin creates an app over the embedded graphs and runs it.
func runBuiltin(t *testing.T, cfg Config) (*App, string) {
	t.Helper()
	cfg.Builtin = true
	a, out, _ := newTestApp(t, cfg)
	require.NoError(t, a.Run(context.Background()))
	return a, out.String()
}

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}
