package recommend

import (
	"errors"
	"sync"
)

// ErrMockExhausted is returned when a MockClassifier has no responses left.
var ErrMockExhausted = errors.New("mock classifier: no responses left")

// MockResponse is a canned response for the MockClassifier. When Panic is
// non-nil the call panics with that value.
type MockResponse struct {
	Rank  int
	Err   error
	Panic any
}

// MockClassifier is a deterministic Classifier for testing.
// It returns canned responses in FIFO order and records all inputs.
type MockClassifier struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Features
}

// NewMockClassifier creates a MockClassifier with the given responses.
func NewMockClassifier(responses ...MockResponse) *MockClassifier {
	return &MockClassifier{responses: responses}
}

func (m *MockClassifier) Predict(f Features) (int, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, f)
	if len(m.responses) == 0 {
		m.mu.Unlock()
		return 0, ErrMockExhausted
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	m.mu.Unlock()

	if resp.Panic != nil {
		panic(resp.Panic)
	}
	if resp.Err != nil {
		return 0, resp.Err
	}
	return resp.Rank, nil
}

// CallCount returns the number of Predict calls made.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
