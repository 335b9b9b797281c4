package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/luxas/deklarative/activity"
	"github.com/luxas/deklarative/activity/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncer_Sync(t *testing.T) {
	rec := recorder.New().WithMinLevel(activity.LevelDebug).RequireTransactionFor("request")
	ctx := activity.ContextWithBackend(context.Background(), rec)

	err := (&syncer{tenant: "acme", failAt: 1}).Sync(ctx, 3)
	require.ErrorIs(t, err, errCopy)

	assert.Empty(t, rec.Misuse())
	assert.Empty(t, rec.InternalExceptions())

	contexts := rec.Contexts()
	require.Len(t, contexts, 4)
	root := contexts[0]
	assert.Equal(t, "Sync", root.Name)
	assert.True(t, root.Forced)
	for _, c := range contexts[1:] {
		assert.Equal(t, "Copy", c.Name)
		assert.Equal(t, root.ID, c.Parent)
		assert.True(t, c.Async)
		assert.Equal(t, []string{"waiting on storage", "suspended", "resumed"}, c.Events)
		assert.Equal(t, []recorder.Attribute{{Name: "tenant", Value: "acme"}}, c.Inherited)
		assert.Equal(t, 1, c.Disposals)
	}
	assert.Equal(t, 1, root.Disposals)

	var failed, succeeded int
	for _, r := range rec.Records() {
		if r.Kind != "activity-exit" || r.Context != "Copy" {
			continue
		}
		switch r.Outcome {
		case "Failed":
			failed++
			assert.Equal(t, "file-1.txt: copy failed", r.Error)
		case "Succeeded":
			succeeded++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, succeeded)
}

func TestRunCmd(t *testing.T) {
	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetArgs([]string{"run", "--exporter", "stdout", "--level", "debug", "--files", "2"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Contains(t, out.String(), "Sync tenant=acme")
	assert.Contains(t, out.String(), "copying 2 files")
	assert.Contains(t, out.String(), `"Name": "Copy"`)
}

func TestRunCmd_invalidLevel(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--level", "loud"})
	assert.Error(t, root.ExecuteContext(context.Background()))
}

func TestRunCmd_config(t *testing.T) {
	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetArgs([]string{"run", "--config", "testdata/demo.yaml", "--fail-at", "0", "--files", "1"})
	err := root.ExecuteContext(context.Background())
	require.ErrorIs(t, err, errCopy)
	assert.Contains(t, out.String(), `"msg":"Copy file=file-0.txt"`)
	assert.Contains(t, out.String(), `"outcome":"Failed"`)
}
