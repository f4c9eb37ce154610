package main

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"pixgrid/config"
	"pixgrid/parallel"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFlag(t *testing.T) {
	assert.Equal(t, "", configFlag([]string{"edit", "a.bmp"}))
	assert.Equal(t, "x.yaml", configFlag([]string{"--config", "x.yaml", "edit"}))
	assert.Equal(t, "y.yaml", configFlag([]string{"new", "--config=y.yaml", "out.bmp"}))
	assert.Equal(t, "", configFlag([]string{"paint", "--", "--config=z.yaml"}))
	assert.Equal(t, "", configFlag([]string{"--config"}))
}

func TestPoolStartedOnlyForBatchCommands(t *testing.T) {
	var started []int
	orig := startPool
	startPool = func(n int) *parallel.Pool {
		started = append(started, n)
		return orig(n)
	}
	t.Cleanup(func() { startPool = orig })

	dir := t.TempDir()
	vars := kong.Vars(config.Default().Vars())
	vars["config_path"] = filepath.Join(dir, "config.yaml")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	run := func(args ...string) {
		t.Helper()
		var cli CLI
		var out bytes.Buffer
		parser, err := newParser(&cli, vars, kong.Writers(&out, &out))
		require.NoError(t, err)
		kctx, err := parser.Parse(args)
		require.NoError(t, err)
		require.NoError(t, kctx.Run(logger))
	}

	run("palette", "list")
	run("new", filepath.Join(dir, "a.bmp"))
	run("info", filepath.Join(dir, "a.bmp"))
	assert.Empty(t, started)

	run("--workers=3", "check", dir)
	assert.Equal(t, []int{3}, started)
}
