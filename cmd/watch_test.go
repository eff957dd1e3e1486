package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/namecheck/internal/domain"
	m "github.com/mouse-blink/namecheck/internal/model"
)

func TestWatchCmd_PassesCheckArgsAndDebounce(t *testing.T) {
	cmd, mockWorkflow := setupCommand(t, newWatchCmd())

	mockWorkflow.On("Watch", mock.Anything, mock.MatchedBy(func(args domain.WatchArgs) bool {
		return assert.ObjectsAreEqual([]m.Path{"Source/..."}, args.Paths) &&
			args.Threads == 2 &&
			args.Debounce == 500*time.Millisecond
	})).Return(nil)

	cmd.SetArgs([]string{"watch", "-p", "2", "Source/..."})
	require.NoError(t, cmd.Execute())
}

func TestWatchCmd_ConfiguredDebounce(t *testing.T) {
	cmd, mockWorkflow := setupCommand(t, newWatchCmd())

	mockWorkflow.On("Watch", mock.Anything, mock.MatchedBy(func(args domain.WatchArgs) bool {
		return args.Debounce == 2*time.Second
	})).Return(nil)

	cmd.SetArgs([]string{"watch", "--config", writeConfig(t, "[watch]\ndebounce = \"2s\"\n")})
	require.NoError(t, cmd.Execute())
}

func TestWatchCmd_ReceivesLiveContext(t *testing.T) {
	cmd, mockWorkflow := setupCommand(t, newWatchCmd())

	mockWorkflow.On("Watch", mock.Anything, mock.Anything).Return(func(ctx context.Context, _ domain.WatchArgs) error {
		assert.NoError(t, ctx.Err())
		return nil
	})

	cmd.SetArgs([]string{"watch"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
}
