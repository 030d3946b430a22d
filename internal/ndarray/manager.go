package ndarray

import (
	"fmt"
	"sync"
)

// Config controls allocation behavior of a Manager.
type Config struct {
	Name        string // Label shown in String() and error messages.
	MaxElements int    // Upper bound on stored values per array; 0 disables the check.
}

// DefaultConfig returns the configuration of a root "base" manager with no element cap.
func DefaultConfig() Config {
	return Config{
		Name:        "base",
		MaxElements: 0,
	}
}

// Manager is the arena that owns every array created through it.
// Closing a Manager releases all arrays it still owns and closes its
// sub-managers, so a scope is written as:
//
//	m := ndarray.NewManager(ndarray.DefaultConfig())
//	defer m.Close()
//
// A Manager is safe for concurrent use.
type Manager struct {
	cfg    Config
	parent *Manager

	mu       sync.Mutex
	arrays   map[*NDArray]struct{}
	children map[*Manager]struct{}
	spawned  int
	closed   bool
}

// NewManager creates a root Manager.
func NewManager(cfg Config) *Manager {
	return &Manager{
		cfg:      cfg,
		arrays:   make(map[*NDArray]struct{}),
		children: make(map[*Manager]struct{}),
	}
}

// NewSubManager creates a Manager whose lifetime is bounded by m:
// closing m also closes the sub-manager. The sub-manager inherits m's config.
func (m *Manager) NewSubManager() (*Manager, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, fmt.Errorf("%s: %w", m.cfg.Name, ErrManagerClosed)
	}

	cfg := m.cfg
	cfg.Name = fmt.Sprintf("%s/%d", m.cfg.Name, m.spawned)
	m.spawned++
	child := NewManager(cfg)
	child.parent = m
	m.children[child] = struct{}{}
	return child, nil
}

// Config returns the manager's configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// Len returns the number of live arrays owned directly by m.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.arrays)
}

// IsClosed reports whether Close has been called.
func (m *Manager) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Close releases every array still owned by m and closes its sub-managers.
// Calling Close more than once is a no-op.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	arrays := m.arrays
	children := m.children
	m.arrays = nil
	m.children = nil
	m.mu.Unlock()

	for child := range children {
		child.Close()
	}
	for a := range arrays {
		a.free()
	}
	if m.parent != nil {
		m.parent.detachChild(m)
	}
}

// String returns a human-readable description of the manager.
func (m *Manager) String() string {
	return fmt.Sprintf("Manager(%s, arrays=%d)", m.cfg.Name, m.Len())
}

// checkAlloc fails if m is closed or n exceeds the element cap.
// It runs before storage is allocated.
func (m *Manager) checkAlloc(n int) error {
	if m.IsClosed() {
		return fmt.Errorf("%s: %w", m.cfg.Name, ErrManagerClosed)
	}
	if m.cfg.MaxElements > 0 && n > m.cfg.MaxElements {
		return fmt.Errorf("%w: %d values exceed manager %q limit of %d",
			ErrInvalidArgument, n, m.cfg.Name, m.cfg.MaxElements)
	}
	return nil
}

// adopt wraps s in a new NDArray owned by m.
// On failure s is released and no array escapes.
func (m *Manager) adopt(format Format, shape Shape, s storage) (*NDArray, error) {
	a := &NDArray{
		format:  format,
		shape:   shape.Clone(),
		storage: s,
		manager: m,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		s.release()
		return nil, fmt.Errorf("%s: %w", m.cfg.Name, ErrManagerClosed)
	}
	m.arrays[a] = struct{}{}
	return a, nil
}

// detach forgets a without releasing it.
func (m *Manager) detach(a *NDArray) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.arrays, a)
}

// detachChild forgets a closed sub-manager.
func (m *Manager) detachChild(child *Manager) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.children, child)
}
