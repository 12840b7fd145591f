package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvBank, "")
	t.Setenv(EnvDelay, "")
	t.Setenv(EnvLog, "")
	return dir
}

func TestResolve_NoFile(t *testing.T) {
	isolate(t)

	cfg, err := Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "", cfg.BankPath)
	assert.Equal(t, 1500*time.Millisecond, cfg.Delay())
}

func TestResolve_Precedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "quizmaster", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("bank: file.yaml\nfeedback_delay: 2s\nlog_file: file.log\n"), 0o644))

	cfg, err := Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "file.yaml", cfg.BankPath)
	assert.Equal(t, 2*time.Second, cfg.Delay())
	assert.Equal(t, "file.log", cfg.LogFile)

	t.Setenv(EnvBank, "env.yaml")
	t.Setenv(EnvDelay, "750ms")
	cfg, err = Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", cfg.BankPath)
	assert.Equal(t, 750*time.Millisecond, cfg.Delay())

	cfg, err = Resolve(Overrides{BankPath: "flag.yaml", FeedbackDelay: "1s", LogFile: "flag.log"})
	require.NoError(t, err)
	assert.Equal(t, "flag.yaml", cfg.BankPath)
	assert.Equal(t, time.Second, cfg.Delay())
	assert.Equal(t, "flag.log", cfg.LogFile)
}

func TestResolve_ExplicitMissingFile(t *testing.T) {
	dir := isolate(t)

	_, err := Resolve(Overrides{ConfigPath: filepath.Join(dir, "nope.yaml")})
	assert.Error(t, err)
}

func TestResolve_BadYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bank: [oops"), 0o644))

	_, err := Resolve(Overrides{ConfigPath: path})
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	fallback := 3 * time.Second
	assert.Equal(t, fallback, Duration("", fallback))
	assert.Equal(t, fallback, Duration("soon", fallback))
	assert.Equal(t, fallback, Duration("-1s", fallback))
	assert.Equal(t, 0*time.Second, Duration("0s", fallback))
	assert.Equal(t, 250*time.Millisecond, Duration("250ms", fallback))
}
