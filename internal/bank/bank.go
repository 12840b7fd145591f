// Package bank loads question lists from YAML or JSON documents.
package bank

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizmaster/internal/quiz"
)

//go:embed default.yaml
var defaultBank []byte

// ErrInvalidBank is returned when a document is not a usable question bank.
var ErrInvalidBank = errors.New("invalid question bank")

// Bank is a titled, ordered list of questions.
type Bank struct {
	Title     string
	Questions []quiz.Question
}

type document struct {
	Title     string         `json:"title"`
	Questions []questionJSON `json:"questions"`
}

type questionJSON struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// Schema is the document shape every bank must match.
var Schema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": quiz.MinOptions,
						"items":    map[string]any{"type": "string"},
					},
					"correct_answer": map[string]any{"type": "integer", "minimum": 0},
				},
				"required":             []any{"prompt", "options", "correct_answer"},
				"additionalProperties": false,
			},
		},
	},
	"required": []any{"questions"},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Default returns the built-in bank.
func Default() (*Bank, error) {
	return Parse(defaultBank)
}

// DefaultSource returns the raw YAML of the built-in bank.
func DefaultSource() []byte {
	out := make([]byte, len(defaultBank))
	copy(out, defaultBank)
	return out
}

// Load reads and parses the bank at path.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// LoadOrDefault loads path, or the built-in bank when path is empty.
func LoadOrDefault(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes a YAML or JSON bank, checks it against Schema, and
// validates every question.
func Parse(data []byte) (*Bank, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidBank, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidBank)
	}

	// Re-encode as JSON so the validator and the decoder see plain JSON values.
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrInvalidBank, err)
	}
	var parsed any
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrInvalidBank, err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}

	var doc document
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}

	b := &Bank{Title: doc.Title, Questions: make([]quiz.Question, 0, len(doc.Questions))}
	for i, q := range doc.Questions {
		question := quiz.Question{
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
		if err := question.Validate(); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrInvalidBank, i, err)
		}
		b.Questions = append(b.Questions, question)
	}
	return b, nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(Schema)
		if err != nil {
			compileErr = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-bank.json", def); err != nil {
			compileErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile("schema://question-bank.json")
	})
	return compiled, compileErr
}
