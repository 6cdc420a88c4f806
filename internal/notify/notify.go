// Package notify holds transient on-screen notifications. Failures in this
// client never crash the host process; they degrade to one of these.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification.
type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Auto-dismiss defaults per severity.
const (
	InfoDismissAfter    = 3 * time.Second
	SuccessDismissAfter = 3 * time.Second
	WarningDismissAfter = 4 * time.Second
	ErrorDismissAfter   = 5 * time.Second

	maxNotices = 5
)

// Notice is one transient notification.
type Notice struct {
	ID       string
	Severity Severity
	Message  string
	Expires  time.Time
}

// Manager keeps the active notices in arrival order, newest last.
type Manager struct {
	notices []Notice
	now     func() time.Time
}

// NewManager returns an empty notification manager.
func NewManager() *Manager {
	return &Manager{now: time.Now}
}

// Info adds an informational notice and returns its id.
func (m *Manager) Info(msg string) string {
	return m.add(Info, msg, InfoDismissAfter)
}

// Success adds a success notice and returns its id.
func (m *Manager) Success(msg string) string {
	return m.add(Success, msg, SuccessDismissAfter)
}

// Warning adds a warning notice and returns its id.
func (m *Manager) Warning(msg string) string {
	return m.add(Warning, msg, WarningDismissAfter)
}

// Error adds an error notice and returns its id.
func (m *Manager) Error(msg string) string {
	return m.add(Error, msg, ErrorDismissAfter)
}

func (m *Manager) add(severity Severity, msg string, ttl time.Duration) string {
	notice := Notice{
		ID:       uuid.NewString(),
		Severity: severity,
		Message:  msg,
		Expires:  m.now().Add(ttl),
	}
	m.notices = append(m.notices, notice)
	if len(m.notices) > maxNotices {
		m.notices = m.notices[len(m.notices)-maxNotices:]
	}
	return notice.ID
}

// Dismiss removes a notice by id.
func (m *Manager) Dismiss(id string) {
	for i, notice := range m.notices {
		if notice.ID == id {
			m.notices = append(m.notices[:i], m.notices[i+1:]...)
			return
		}
	}
}

// Prune drops expired notices and reports whether anything changed.
func (m *Manager) Prune(now time.Time) bool {
	kept := m.notices[:0]
	for _, notice := range m.notices {
		if notice.Expires.After(now) {
			kept = append(kept, notice)
		}
	}
	changed := len(kept) != len(m.notices)
	m.notices = kept
	return changed
}

// Active returns the current notices, oldest first.
func (m *Manager) Active() []Notice {
	return append([]Notice(nil), m.notices...)
}
