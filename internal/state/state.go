// Package state provides thread-safe session state for the application.
//
// The radiation model itself is synchronous and single-threaded; the
// manager exists so the Bubble Tea program loop and any headless callers
// share one consistent view of the live body, its saved snapshots, and
// the recent-action log.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-blackbody/internal/blackbody"
	"github.com/litescript/ls-blackbody/internal/config"
)

// EventType labels an entry in the session action log.
type EventType string

const (
	EventTempChanged EventType = "TEMP_CHANGED"
	EventSaved       EventType = "SAVED"
	EventCleared     EventType = "CLEARED"
	EventReset       EventType = "RESET"
)

// Event records one user action for the footer ticker.
type Event struct {
	Type      EventType
	Timestamp time.Time
	TempK     float64
}

// Snapshot is a point-in-time view of the session handed to views.
// Saved bodies are immutable; the live body is mutated only through the
// manager, which the single UI goroutine drives. Events are ordered
// oldest first.
type Snapshot struct {
	Live        *blackbody.Body
	Saved       []*blackbody.Body
	Display     config.DisplayConfig
	Events      []Event
	LastChanged time.Time
}

// Manager guards the body collection and the action log.
type Manager struct {
	mu sync.RWMutex

	collection  *blackbody.Collection
	display     config.DisplayConfig
	lastChanged time.Time

	events    []Event
	maxEvents int
	eventAt   int
}

const defaultMaxEvents = 50

// NewManager creates a manager with a live body at the configured initial
// temperature.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		collection: blackbody.NewCollection(cfg.Display.InitialTempK, cfg.ToCalibration()),
		display:    cfg.Display,
		maxEvents:  defaultMaxEvents,
		events:     make([]Event, 0, defaultMaxEvents),
	}
}

// Snapshot returns the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	saved := make([]*blackbody.Body, len(m.collection.Saved()))
	copy(saved, m.collection.Saved())

	// Unwrap the ring so callers see events in chronological order: the
	// slot at eventAt holds the oldest entry once the buffer is full.
	events := make([]Event, 0, len(m.events))
	events = append(events, m.events[m.eventAt:]...)
	events = append(events, m.events[:m.eventAt]...)

	return Snapshot{
		Live:        m.collection.Live(),
		Saved:       saved,
		Display:     m.display,
		Events:      events,
		LastChanged: m.lastChanged,
	}
}

// Collection returns the underlying collection for headless callers that
// hold the manager exclusively.
func (m *Manager) Collection() *blackbody.Collection {
	return m.collection
}

// SetTemperature sets the live temperature, clamped to the display range.
// Returns the clamped value.
func (m *Manager) SetTemperature(tempK float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	clamped := m.clamp(tempK)
	m.collection.Live().SetTemperature(clamped)
	m.touch(EventTempChanged, clamped)
	return clamped
}

// AdjustTemperature shifts the live temperature by delta kelvin, clamped
// to the display range. Returns the new value.
func (m *Manager) AdjustTemperature(deltaK float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	clamped := m.clamp(m.collection.Live().Temperature() + deltaK)
	m.collection.Live().SetTemperature(clamped)
	m.touch(EventTempChanged, clamped)
	return clamped
}

// Save freezes the live temperature into the snapshot history.
func (m *Manager) Save() {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.collection.Save()
	m.touch(EventSaved, snap.Temperature())
}

// Clear discards the snapshot history.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.collection.Clear()
	m.touch(EventCleared, m.collection.Live().Temperature())
}

// Reset restores the initial temperature and clears the history.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.collection.Reset()
	m.touch(EventReset, m.collection.Live().Temperature())
}

func (m *Manager) clamp(tempK float64) float64 {
	if tempK < m.display.TempMinK {
		return m.display.TempMinK
	}
	if tempK > m.display.TempMaxK {
		return m.display.TempMaxK
	}
	return tempK
}

// touch records an event in the ring buffer. Caller holds the lock.
func (m *Manager) touch(typ EventType, tempK float64) {
	m.lastChanged = time.Now()
	e := Event{Type: typ, Timestamp: m.lastChanged, TempK: tempK}

	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
		return
	}
	m.events[m.eventAt] = e
	m.eventAt = (m.eventAt + 1) % m.maxEvents
}
