package question

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed bank.json
var bankJSON []byte

var (
	loadOnce sync.Once
	bank     []Question
	loadErr  error
)

// All returns every question in the bank in stable order.
// The embedded bank is validated on first use; a malformed bank is a
// build-time mistake and panics, like a bad seed graph would.
func All() []Question {
	loadOnce.Do(load)
	if loadErr != nil {
		panic(fmt.Sprintf("question bank: %v", loadErr))
	}
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// ByTopic returns the questions for a single topic, preserving bank order.
func ByTopic(t Topic) []Question {
	var out []Question
	for _, q := range All() {
		if q.Topic == t {
			out = append(out, q)
		}
	}
	return out
}

func load() {
	if err := validateBank(bankJSON); err != nil {
		loadErr = err
		return
	}

	var doc struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(bankJSON, &doc); err != nil {
		loadErr = fmt.Errorf("parse bank: %w", err)
		return
	}

	seen := make(map[string]bool, len(doc.Questions))
	for _, q := range doc.Questions {
		if seen[q.ID] {
			loadErr = fmt.Errorf("duplicate question id %q", q.ID)
			return
		}
		seen[q.ID] = true
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			loadErr = fmt.Errorf("question %q: correctAnswer %d out of range", q.ID, q.CorrectAnswer)
			return
		}
	}

	bank = doc.Questions
}

// validateBank checks the raw bank JSON against the bank schema.
func validateBank(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	var schemaParsed any
	if err := json.Unmarshal([]byte(bankSchema), &schemaParsed); err != nil {
		return fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://bank.json", schemaParsed); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema://bank.json")
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("bank schema validation: %w", err)
	}
	return nil
}
