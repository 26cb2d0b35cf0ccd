package llm

import "context"

// Info describes a Model implementation, grounded on the teacher's
// model.Info.
type Info struct {
	Name     string
	Provider string
}

// Model is the minimal interface a Grounded Call operator needs: a
// synchronous single-turn completion. Grounded on the teacher's
// model.Model, with streaming and the multi-role Request/Response shape
// dropped — the kernel invokes Grounded atoms synchronously to completion
// (spec §5) and has no transcript to stream into.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Info() Info
}

// MockModel is a deterministic, dependency-free Model for tests and
// examples, grounded on the teacher's model.MockModel.
type MockModel struct {
	info      Info
	responses map[string]string
}

// NewMockModel constructs a MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{info: Info{Name: name, Provider: "mock"}, responses: map[string]string{}}
}

// AddResponse registers a canned completion for an exact prompt match.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Generate returns the registered canned response, or an echo fallback.
func (m *MockModel) Generate(ctx context.Context, prompt string) (string, error) {
	if resp, ok := m.responses[prompt]; ok {
		return resp, nil
	}
	return "mock response to: " + prompt, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
