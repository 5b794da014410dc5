package hook

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MockAttributes is the raw type/access/value triple a MockHook serves for
// one path.
type MockAttributes struct {
	Type  string
	Access string
	Value any
}

// MockHook is an in-memory reference Hook implementation used throughout
// this module's tests and examples. It is safe for concurrent use.
type MockHook struct {
	mu sync.Mutex

	nodes     map[string]MockAttributes
	connected bool

	// ConnectFailures, when > 0, causes the first N calls to Connect to
	// fail with ConnectErr (or a generic error when ConnectErr is nil)
	// before the (N+1)th call succeeds.
	ConnectFailures int
	connectAttempts int
	ConnectErr      error

	// FailPaths maps a path to an error GetParameterValues/
	// GetParameterAttributes should return for that path.
	FailPaths map[string]error

	// SubscribeResults maps an event path to the (success, error) the mock
	// returns for SubscribeToEvent. Paths absent from the map succeed.
	SubscribeResults map[string]subscribeResult

	// FunctionResults maps a function path to the outputs CallFunction
	// returns. Paths absent from the map return an error.
	FunctionResults map[string]map[string]any
	// FunctionErrors maps a function path to an error CallFunction returns
	// instead of FunctionResults.
	FunctionErrors map[string]error

	// Calls records every method invoked, in order, for assertions in tests.
	Calls []string
}

type subscribeResult struct {
	ok  bool
	err error
}

// NewMockHook returns a MockHook serving nodes as its parameter tree.
func NewMockHook(nodes map[string]MockAttributes) *MockHook {
	return &MockHook{
		nodes:            nodes,
		FailPaths:        make(map[string]error),
		SubscribeResults: make(map[string]subscribeResult),
		FunctionResults:  make(map[string]map[string]any),
		FunctionErrors:   make(map[string]error),
	}
}

// WithSubscribeResult configures SubscribeToEvent's response for path.
func (m *MockHook) WithSubscribeResult(path string, ok bool, err error) *MockHook {
	m.SubscribeResults[path] = subscribeResult{ok: ok, err: err}
	return m
}

// WithFunctionResult configures CallFunction's outputs for path.
func (m *MockHook) WithFunctionResult(path string, outputs map[string]any) *MockHook {
	m.FunctionResults[path] = outputs
	return m
}

// WithFunctionError configures CallFunction to fail for path.
func (m *MockHook) WithFunctionError(path string, err error) *MockHook {
	m.FunctionErrors[path] = err
	return m
}

func (m *MockHook) record(call string) {
	m.Calls = append(m.Calls, call)
}

// Connect implements Hook.
func (m *MockHook) Connect(_ context.Context, _ DeviceConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Connect")
	if m.connectAttempts < m.ConnectFailures {
		m.connectAttempts++
		if m.ConnectErr != nil {
			return m.ConnectErr
		}
		return fmt.Errorf("hook: mock connect failure %d", m.connectAttempts)
	}
	m.connected = true
	return nil
}

// Disconnect implements Hook.
func (m *MockHook) Disconnect(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Disconnect")
	m.connected = false
	return nil
}

// Connected reports whether Connect has succeeded without a matching Disconnect.
func (m *MockHook) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// GetParameterNames implements Hook.
func (m *MockHook) GetParameterNames(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetParameterNames:" + prefix)

	var names []string
	for path := range m.nodes {
		if path == prefix {
			continue
		}
		if strings.HasPrefix(path, prefix) {
			names = append(names, path)
		}
	}
	sort.Strings(names)
	return names, nil
}

// GetParameterValues implements Hook.
func (m *MockHook) GetParameterValues(_ context.Context, paths []string) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetParameterValues")

	values := make(map[string]any, len(paths))
	for _, p := range paths {
		if err, ok := m.FailPaths[p]; ok {
			return values, err
		}
		if n, ok := m.nodes[p]; ok {
			values[p] = n.Value
		}
	}
	return values, nil
}

// GetParameterAttributes implements Hook.
func (m *MockHook) GetParameterAttributes(_ context.Context, paths []string) (map[string]Attributes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetParameterAttributes")

	attrs := make(map[string]Attributes, len(paths))
	for _, p := range paths {
		if err, ok := m.FailPaths[p]; ok {
			return attrs, err
		}
		if n, ok := m.nodes[p]; ok {
			attrs[p] = Attributes{Type: n.Type, Access: n.Access}
		}
	}
	return attrs, nil
}

// SetParameterValues implements Hook.
func (m *MockHook) SetParameterValues(_ context.Context, values map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("SetParameterValues")

	for p, v := range values {
		n, ok := m.nodes[p]
		if !ok {
			return fmt.Errorf("hook: unknown path %q", p)
		}
		n.Value = v
		m.nodes[p] = n
	}
	return nil
}

// SubscribeToEvent implements Hook.
func (m *MockHook) SubscribeToEvent(_ context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("SubscribeToEvent:" + path)

	if r, ok := m.SubscribeResults[path]; ok {
		return r.ok, r.err
	}
	return true, nil
}

// CallFunction implements Hook.
func (m *MockHook) CallFunction(_ context.Context, path string, _ map[string]any) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CallFunction:" + path)

	if err, ok := m.FunctionErrors[path]; ok {
		return nil, err
	}
	if outputs, ok := m.FunctionResults[path]; ok {
		return outputs, nil
	}
	return nil, fmt.Errorf("hook: no mock function result configured for %q", path)
}

// Ensure MockHook implements Hook at compile time.
var _ Hook = (*MockHook)(nil)
