package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "General Knowledge", b.Title)
	assert.Len(t, b.Questions, 10)
	for i, q := range b.Questions {
		assert.NoError(t, q.Validate(), "question %d", i)
	}
	assert.Equal(t, "Paris", b.Questions[0].Options[b.Questions[0].CorrectAnswer])
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{
		"title": "Math",
		"questions": [
			{"prompt": "2 + 2?", "options": ["3", "4"], "correct_answer": 1}
		]
	}`)
	b, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "Math", b.Title)
	require.Len(t, b.Questions, 1)
	assert.Equal(t, 1, b.Questions[0].CorrectAnswer)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"not yaml", "questions: [unclosed"},
		{"no questions key", "title: x"},
		{"no questions", "questions: []"},
		{"one option", "questions:\n  - prompt: Q\n    options: [A]\n    correct_answer: 0\n"},
		{"missing answer", "questions:\n  - prompt: Q\n    options: [A, B]\n"},
		{"negative answer", "questions:\n  - prompt: Q\n    options: [A, B]\n    correct_answer: -1\n"},
		{"answer out of range", "questions:\n  - prompt: Q\n    options: [A, B]\n    correct_answer: 2\n"},
		{"unknown field", "questions:\n  - prompt: Q\n    options: [A, B]\n    correct_answer: 0\n    hint: nope\n"},
		{"numeric options", "questions:\n  - prompt: Q\n    options: [1, 2]\n    correct_answer: 0\n"},
		{"blank prompt", "questions:\n  - prompt: \" \"\n    options: [A, B]\n    correct_answer: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidBank)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yaml")
	content := "title: Tiny\nquestions:\n  - prompt: Sky colour?\n    options: [Blue, Green]\n    correct_answer: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Tiny", b.Title)
	assert.Len(t, b.Questions, 1)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	b, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.NotEmpty(t, b.Questions)
}

func TestDefaultSourceParses(t *testing.T) {
	b, err := Parse(DefaultSource())
	require.NoError(t, err)
	assert.Equal(t, "General Knowledge", b.Title)
}
