package testutil

import (
	"devspace/internal/ports"

	"github.com/stretchr/testify/mock"
)

var (
	// AnyAccessMode matches any ports.AccessMode argument
	AnyAccessMode = mock.AnythingOfType("ports.AccessMode")
	// AnyBytes matches any file content argument
	AnyBytes = mock.AnythingOfType("[]uint8")
)

type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	args := m.Called(path, content, accessMode)
	return args.Error(0)
}

func (m *MockFileSystem) EnsureDirExists(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystem) FileExists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileSystem) HomeDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

var _ ports.FileSystem = (*MockFileSystem)(nil)
