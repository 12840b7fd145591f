package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBankCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	content := "title: Tiny\nquestions:\n  - prompt: Sky colour?\n    options: [Blue, Green]\n    correct_answer: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := execute(t, "bank", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Tiny")
	assert.Contains(t, out, "Sky colour?")
	assert.Contains(t, out, "1 questions OK")
}

func TestBankCheck_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("questions: []\n"), 0o644))

	_, err := execute(t, "bank", "check", path)
	assert.Error(t, err)
}

func TestBankDefault(t *testing.T) {
	out, err := execute(t, "bank", "default")
	require.NoError(t, err)
	assert.Contains(t, out, "General Knowledge")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "quizmaster")
}
