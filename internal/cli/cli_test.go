package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/passgraph/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		expectUsage    bool
	}{
		{
			name: "Happy path with all flags",
			args: []string{
				"-graph", "/test/graphs",
				"--builtin",
				"--log-level=DEBUG",
				"--log-format=json",
				"--workers=8",
				"--export=dot",
				"--select=RenderPass01",
				"--no-color",
				"--inspect-port=8080",
			},
			expectedConfig: &app.Config{
				GraphPath:   "/test/graphs",
				Builtin:     true,
				LogLevel:    "debug",
				LogFormat:   "json",
				WorkerCount: 8,
				Export:      "dot",
				Select:      "RenderPass01",
				NoColor:     true,
				InspectPort: 8080,
			},
		},
		{
			name: "Shorthand flag and defaults",
			args: []string{"-g", "/short/path"},
			expectedConfig: &app.Config{
				GraphPath:   "/short/path",
				LogLevel:    "info",
				LogFormat:   "text",
				WorkerCount: 4,
			},
		},
		{
			name: "Positional argument for path",
			args: []string{"/positional/path"},
			expectedConfig: &app.Config{
				GraphPath:   "/positional/path",
				LogLevel:    "info",
				LogFormat:   "text",
				WorkerCount: 4,
			},
		},
		{
			name: "Builtin without path",
			args: []string{"-builtin"},
			expectedConfig: &app.Config{
				Builtin:     true,
				LogLevel:    "info",
				LogFormat:   "text",
				WorkerCount: 4,
			},
		},
		{
			name:        "Help flag triggers clean exit",
			args:        []string{"-h"},
			expectExit:  true,
			expectUsage: true,
		},
		{
			name:        "No path triggers clean exit with usage",
			args:        []string{},
			expectExit:  true,
			expectUsage: true,
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"--log-level=foo", "/path"},
			expectErr: "invalid log-level",
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"--log-format=yaml", "/path"},
			expectErr: "invalid log-format",
		},
		{
			name:      "Invalid export format returns an error",
			args:      []string{"--export=png", "/path"},
			expectErr: "unsupported export format",
		},
		{
			name:      "Zero workers returns an error",
			args:      []string{"--workers=0", "/path"},
			expectErr: "worker count",
		},
		{
			name:      "Unknown flag returns an error",
			args:      []string{"--nope"},
			expectErr: "flag provided but not defined",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected an ExitError")
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, exitErr.Message, tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}
			if tc.expectUsage {
				require.Contains(t, out.String(), "Usage:")
			}
		})
	}
}
