package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "testdata/nonexistent.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("server:\n  listen: [broken"), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: cfgFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ConfigValidation(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "no-key.yml")
	content := `
server:
  listen: "127.0.0.1:18767"
spoonacular:
  endpoint: "http://127.0.0.1:18766"
`
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: cfgFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

func TestRun_ServerStartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Opts{Config: "testdata/test_config.yml", Debug: true})
	}()

	// wait for the server to come up
	var pinged bool
	for i := 0; i < 100; i++ {
		resp, err := http.Get("http://127.0.0.1:18765/ping")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				pinged = true
				break
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	require.True(t, pinged, "server did not start")

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode", func(t *testing.T) {
		SetupLog(true)
	})
	t.Run("normal mode", func(t *testing.T) {
		SetupLog(false)
	})
	t.Run("with secrets", func(t *testing.T) {
		SetupLog(false, "super-secret-key")
	})
}
