package ploc2d

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/ryan-topping/sick-ploc2d/logger"
)

// Manager is a registry of named sessions for callers driving several
// PLOC2D devices at once. Each device keeps its own Session over its own
// connection; the command channel forbids sharing one connection between
// concurrent jobs, so the Manager never does.
type Manager struct {
	sessions *xsync.MapOf[string, *Session]
	logger   logger.Logger
}

// ManagerOption represents a functional option for configuring a Manager.
type ManagerOption func(*Manager)

// WithManagerLogger sets the logger for the Manager.
// The default logger is the global logger instance.
func WithManagerLogger(l logger.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = l
	}
}

// NewManager creates an empty session registry.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions: xsync.NewMapOf[string, *Session](),
		logger:   logger.GetLogger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Add creates a session for the device described by cfg and registers it
// under name. It returns ErrDuplicateSession if the name is already taken
// and ErrConfigNil if cfg is nil.
func (m *Manager) Add(name string, cfg *SessionConfig) (*Session, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	session := NewSession(cfg)
	if _, loaded := m.sessions.LoadOrStore(name, session); loaded {
		return nil, ErrDuplicateSession
	}

	m.logger.Debug("session registered", "name", name, "host", cfg.host, "port", cfg.port)

	return session, nil
}

// Get returns the session registered under name.
func (m *Manager) Get(name string) (*Session, bool) {
	return m.sessions.Load(name)
}

// Remove unregisters the session under name and disconnects it.
// It is a no-op for an unknown name.
func (m *Manager) Remove(name string) {
	session, loaded := m.sessions.LoadAndDelete(name)
	if !loaded {
		return
	}

	session.Disconnect()
	m.logger.Debug("session removed", "name", name)
}

// Range calls fn for each registered session until fn returns false.
func (m *Manager) Range(fn func(name string, session *Session) bool) {
	m.sessions.Range(fn)
}

// Len returns the number of registered sessions.
func (m *Manager) Len() int {
	return m.sessions.Size()
}

// Shutdown disconnects and unregisters every session.
func (m *Manager) Shutdown() {
	m.sessions.Range(func(name string, session *Session) bool {
		session.Disconnect()
		m.sessions.Delete(name)
		return true
	})

	m.logger.Debug("all sessions shut down")
}
