package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/extension-forge/internal/types"
)

func TestRun_EndToEnd(t *testing.T) {
	target := filepath.Join(t.TempDir(), "extension")

	var events []ProgressEvent
	result, err := Run(context.Background(), RunOptions{
		Prompt:    "Block Facebook and TikTok every time the browser opens.",
		TargetDir: target,
		OnProgress: func(event ProgressEvent) {
			events = append(events, event)
		},
	})
	require.NoError(t, err)

	require.NotNil(t, result.Features)
	assert.True(t, result.Features.HasIntent(types.IntentBackgroundAutomation))

	require.NotNil(t, result.Report)
	assert.Equal(t, target, result.Report.TargetDir)
	assert.Empty(t, result.Problems)

	// Every emitted file is on disk
	for _, file := range result.Report.FilesWritten {
		_, err := os.Stat(filepath.Join(target, file))
		assert.NoError(t, err, "missing %s", file)
	}

	// Progress events arrive in stage order
	var steps []string
	for _, event := range events {
		steps = append(steps, event.Step)
	}
	assert.Equal(t, []string{StepAnalyze, StepManifest, StepGenerate, StepWrite, StepVerify}, steps)
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	target := filepath.Join(t.TempDir(), "extension")

	result, err := Run(context.Background(), RunOptions{
		Prompt:    "show a popup with today's date",
		TargetDir: target,
		DryRun:    true,
	})
	require.NoError(t, err)

	assert.Nil(t, result.Report)
	require.NotNil(t, result.Bundle)
	assert.NotEmpty(t, result.Bundle.Files)

	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err), "dry run must not create the target directory")
}

func TestRun_EmptyPromptStillYieldsBundle(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{
		Prompt: "",
		DryRun: true,
	})
	require.NoError(t, err)

	assert.True(t, result.Features.Fallback)
	assert.ElementsMatch(t, []string{"popup.html", "popup.js"}, result.Bundle.FilePaths())
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, RunOptions{
		Prompt:    "show a popup",
		TargetDir: filepath.Join(t.TempDir(), "extension"),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidRulesPath(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		Prompt:    "show a popup",
		RulesPath: filepath.Join(t.TempDir(), "missing.yaml"),
		DryRun:    true,
	})
	assert.Error(t, err)
}
