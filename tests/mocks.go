package tests

import (
	"sync"

	"github.com/pkg/errors"
)

type mockSender struct {
	mu      sync.Mutex
	failAll bool
	sent    []string
}

func (m *mockSender) Send(recipient, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failAll {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, recipient)
	return nil
}

func (m *mockSender) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
