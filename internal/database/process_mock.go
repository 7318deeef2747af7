package database

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// MockProcessRunner is a mock implementation of ProcessRunner for testing.
type MockProcessRunner struct {
	// RunFunc allows tests to provide custom behavior
	RunFunc func(ctx context.Context, path string, args []string, stdin io.Reader) (stdout, stderr []byte, err error)

	// Delay simulates slow process execution
	Delay time.Duration

	mu       sync.Mutex
	calls    int
	lastPath string
	lastArgs []string
}

// Run executes the mock behavior.
func (m *MockProcessRunner) Run(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	m.mu.Lock()
	m.calls++
	m.lastPath = path
	m.lastArgs = args
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}

	if m.RunFunc != nil {
		return m.RunFunc(ctx, path, args, stdin)
	}
	return nil, nil, nil
}

// CallCount returns how many times Run was called.
func (m *MockProcessRunner) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastCall returns the program and arguments of the latest Run.
func (m *MockProcessRunner) LastCall() (string, []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPath, m.lastArgs
}

// NewMockProcessRunner creates a new mock process runner.
func NewMockProcessRunner() *MockProcessRunner {
	return &MockProcessRunner{}
}

// NewErrorMockProcessRunner creates a mock that fails like a missing binary.
func NewErrorMockProcessRunner(errMsg string) *MockProcessRunner {
	return &MockProcessRunner{
		RunFunc: func(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
			return nil, []byte(errMsg), errors.New(errMsg)
		},
	}
}

// NewSuccessMockProcessRunner creates a mock that always prints stdout.
func NewSuccessMockProcessRunner(stdout []byte) *MockProcessRunner {
	return &MockProcessRunner{
		RunFunc: func(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
			return stdout, nil, nil
		},
	}
}

// NewGrepMockProcessRunner creates a mock that behaves like grep invoked by
// GrepSearcher: it prints the lines of the file (the last argument) starting
// with the prefix after "^", and fails with exit status 1 when none match.
func NewGrepMockProcessRunner() *MockProcessRunner {
	return &MockProcessRunner{
		RunFunc: func(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
			if len(args) < 2 {
				return nil, []byte("usage: grep pattern file"), errors.New("exit status 2")
			}
			prefix := strings.ReplaceAll(strings.TrimPrefix(args[len(args)-2], "^"), `\`, "")

			f, err := os.Open(args[len(args)-1])
			if err != nil {
				return nil, []byte(err.Error()), errors.New("exit status 2")
			}
			defer f.Close()

			var out strings.Builder
			scanner := bufio.NewScanner(f)
			for scanner.Scan() {
				if strings.HasPrefix(scanner.Text(), prefix) {
					out.WriteString(scanner.Text() + "\n")
				}
			}
			if out.Len() == 0 {
				return nil, nil, errors.New("exit status 1")
			}
			return []byte(out.String()), nil, nil
		},
	}
}
