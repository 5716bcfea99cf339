package testutil

import (
	"context"
	"os"
	"time"

	"devspace/internal/core/domain"
	"devspace/internal/ports"

	"github.com/stretchr/testify/mock"
)

// Compile-time interface compliance check
var _ ports.CommandRunner = (*MockCommandRunner)(nil)

// MockCommandRunner provides a testify mock for ports.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Execute(ctx context.Context, inv domain.Invocation) (*domain.ExecutionResult, error) {
	callArgs := m.Called(inv)
	return resultArg(callArgs, 0), callArgs.Error(1)
}

func (m *MockCommandRunner) ExecuteArgs(ctx context.Context, name string, args ...string) (*domain.ExecutionResult, error) {
	callArgs := m.Called(name, args)
	return resultArg(callArgs, 0), callArgs.Error(1)
}

func (m *MockCommandRunner) StartBackground(name string, args ...string) (ports.BackgroundProcess, error) {
	callArgs := m.Called(name, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(ports.BackgroundProcess), callArgs.Error(1)
}

func (m *MockCommandRunner) ExecuteWithInput(ctx context.Context, inv domain.Invocation, input string) (*domain.ExecutionResult, error) {
	callArgs := m.Called(inv, input)
	return resultArg(callArgs, 0), callArgs.Error(1)
}

func (m *MockCommandRunner) ExecuteWithTimeout(ctx context.Context, inv domain.Invocation, timeout time.Duration) (*domain.TimedResult, error) {
	callArgs := m.Called(inv, timeout)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*domain.TimedResult), callArgs.Error(1)
}

func (m *MockCommandRunner) ExecutePipeline(ctx context.Context, invs []domain.Invocation) (*domain.ExecutionResult, error) {
	callArgs := m.Called(invs)
	return resultArg(callArgs, 0), callArgs.Error(1)
}

func resultArg(callArgs mock.Arguments, index int) *domain.ExecutionResult {
	if callArgs.Get(index) == nil {
		return nil
	}
	return callArgs.Get(index).(*domain.ExecutionResult)
}

// Compile-time interface compliance check
var _ ports.BackgroundProcess = (*MockBackgroundProcess)(nil)

// MockBackgroundProcess provides a testify mock for ports.BackgroundProcess
type MockBackgroundProcess struct {
	mock.Mock
}

func (m *MockBackgroundProcess) Pid() int {
	return m.Called().Int(0)
}

func (m *MockBackgroundProcess) RunID() string {
	return m.Called().String(0)
}

func (m *MockBackgroundProcess) Invocation() domain.Invocation {
	return m.Called().Get(0).(domain.Invocation)
}

func (m *MockBackgroundProcess) OutputPath() string {
	return m.Called().String(0)
}

func (m *MockBackgroundProcess) Signal(sig os.Signal) error {
	return m.Called(sig).Error(0)
}

func (m *MockBackgroundProcess) Kill() error {
	return m.Called().Error(0)
}

func (m *MockBackgroundProcess) Wait() error {
	return m.Called().Error(0)
}
