package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"

	domainmocks "github.com/mouse-blink/namecheck/internal/domain/mocks"
)

// setupCommand builds a fresh root with the given subcommands and swaps in a
// mock workflow. The working directory is an empty temp dir so no stray
// config file is picked up.
func setupCommand(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	t.Chdir(t.TempDir())

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd, mockWorkflow
}

// writeConfig writes a TOML config into the working directory and returns its name.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	const name = "test.toml"
	if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return name
}
