package watchlist

import (
	"errors"
	"log"
	"strings"
	"sync"
)

var (
	ErrAlreadyTracked = errors.New("symbol is already tracked")
	ErrNotTracked     = errors.New("symbol is not tracked")
)

// Manager guards the mutable symbol set. The poller iterates a snapshot per
// sweep while the operator mutates the set from the foreground, so every
// read hands out a copy. The full list is saved on every mutation.
type Manager struct {
	mu       sync.Mutex
	symbols  []string
	filePath string
}

// NewManager loads (or seeds) the watch-list store at filePath. A corrupt
// store is recovered to the default list with a warning.
func NewManager(filePath string) (*Manager, error) {
	symbols, err := Load(filePath)
	if err != nil {
		if !errors.Is(err, ErrCorruptStore) {
			return nil, err
		}
		log.Printf("[WARN] %v, reset to default list", err)
	}
	return &Manager{symbols: symbols, filePath: filePath}, nil
}

// Symbols returns a snapshot copy of the tracked symbols.
func (m *Manager) Symbols() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.symbols...)
}

// Has reports whether symbol is tracked.
func (m *Manager) Has(symbol string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.index(Normalize(symbol)) >= 0
}

// Add appends a symbol and persists the list. The symbol must already be
// validated against the data source by the caller.
func (m *Manager) Add(symbol string) error {
	symbol = Normalize(symbol)
	if symbol == "" {
		return errors.New("empty symbol")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.index(symbol) >= 0 {
		return ErrAlreadyTracked
	}
	m.symbols = append(m.symbols, symbol)
	return Save(m.filePath, m.symbols)
}

// Remove deletes a symbol and persists the list.
func (m *Manager) Remove(symbol string) error {
	symbol = Normalize(symbol)

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(symbol)
	if i < 0 {
		return ErrNotTracked
	}
	m.symbols = append(m.symbols[:i], m.symbols[i+1:]...)
	return Save(m.filePath, m.symbols)
}

// Normalize canonicalizes operator input: trimmed, upper-cased.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (m *Manager) index(symbol string) int {
	for i, s := range m.symbols {
		if s == symbol {
			return i
		}
	}
	return -1
}
