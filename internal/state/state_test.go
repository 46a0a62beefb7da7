package state

import (
	"sync"
	"testing"

	"github.com/litescript/ls-blackbody/internal/config"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(config.Default())
}

func TestNewManager(t *testing.T) {
	m := newTestManager(t)

	snap := m.Snapshot()
	if snap.Live == nil {
		t.Fatal("Snapshot has no live body")
	}
	if got := snap.Live.Temperature(); got != config.Default().Display.InitialTempK {
		t.Errorf("initial temperature = %g, want %g", got, config.Default().Display.InitialTempK)
	}
	if len(snap.Saved) != 0 {
		t.Errorf("len(Saved) = %d, want 0", len(snap.Saved))
	}
}

func TestManager_SetTemperatureClamps(t *testing.T) {
	m := newTestManager(t)
	display := config.Default().Display

	tests := []struct {
		in   float64
		want float64
	}{
		{5000, 5000},
		{1, display.TempMinK},
		{1e6, display.TempMaxK},
	}

	for _, tt := range tests {
		if got := m.SetTemperature(tt.in); got != tt.want {
			t.Errorf("SetTemperature(%g) = %g, want %g", tt.in, got, tt.want)
		}
		if got := m.Snapshot().Live.Temperature(); got != tt.want {
			t.Errorf("live temperature after SetTemperature(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestManager_AdjustTemperature(t *testing.T) {
	m := newTestManager(t)
	m.SetTemperature(5000)

	if got := m.AdjustTemperature(250); got != 5250 {
		t.Errorf("AdjustTemperature(+250) = %g, want 5250", got)
	}
	if got := m.AdjustTemperature(-1e6); got != config.Default().Display.TempMinK {
		t.Errorf("AdjustTemperature under range = %g, want display minimum", got)
	}
}

func TestManager_SaveClearReset(t *testing.T) {
	m := newTestManager(t)

	m.SetTemperature(3000)
	m.Save()
	m.SetTemperature(4000)
	m.Save()
	m.SetTemperature(5000)
	m.Save()

	snap := m.Snapshot()
	if len(snap.Saved) != 2 {
		t.Fatalf("len(Saved) = %d, want 2 (capacity bound)", len(snap.Saved))
	}
	if snap.Saved[0].Temperature() != 4000 || snap.Saved[1].Temperature() != 5000 {
		t.Errorf("saved temps = [%g, %g], want [4000, 5000]",
			snap.Saved[0].Temperature(), snap.Saved[1].Temperature())
	}

	m.Clear()
	if got := len(m.Snapshot().Saved); got != 0 {
		t.Errorf("len(Saved) after Clear = %d, want 0", got)
	}

	m.Save()
	m.Reset()
	snap = m.Snapshot()
	if got := snap.Live.Temperature(); got != config.Default().Display.InitialTempK {
		t.Errorf("temperature after Reset = %g, want initial", got)
	}
	if len(snap.Saved) != 0 {
		t.Errorf("len(Saved) after Reset = %d, want 0", len(snap.Saved))
	}
}

func TestManager_EventLog(t *testing.T) {
	m := newTestManager(t)

	m.SetTemperature(4000)
	m.Save()
	m.Clear()
	m.Reset()

	events := m.Snapshot().Events
	if len(events) != 4 {
		t.Fatalf("len(Events) = %d, want 4", len(events))
	}

	wantTypes := []EventType{EventTempChanged, EventSaved, EventCleared, EventReset}
	for i, want := range wantTypes {
		if events[i].Type != want {
			t.Errorf("Events[%d].Type = %s, want %s", i, events[i].Type, want)
		}
	}
	if events[1].TempK != 4000 {
		t.Errorf("save event temp = %g, want 4000", events[1].TempK)
	}
}

func TestManager_EventLogBounded(t *testing.T) {
	m := newTestManager(t)

	for i := 0; i < defaultMaxEvents*2; i++ {
		m.AdjustTemperature(1)
	}

	if got := len(m.Snapshot().Events); got != defaultMaxEvents {
		t.Errorf("len(Events) = %d, want %d", got, defaultMaxEvents)
	}
}

func TestManager_EventLogOrderAfterWrap(t *testing.T) {
	m := newTestManager(t)

	// Push well past the ring capacity with distinguishable temperatures.
	const extra = 5
	for i := 0; i < defaultMaxEvents+extra; i++ {
		m.SetTemperature(300 + float64(i))
	}

	events := m.Snapshot().Events
	if len(events) != defaultMaxEvents {
		t.Fatalf("len(Events) = %d, want %d", len(events), defaultMaxEvents)
	}

	// Oldest first: the retained window is the last defaultMaxEvents
	// temperatures, in the order they were set.
	for i, e := range events {
		want := 300 + float64(extra+i)
		if e.TempK != want {
			t.Fatalf("Events[%d].TempK = %g, want %g", i, e.TempK, want)
		}
	}
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Fatalf("Events[%d] predates Events[%d]", i, i-1)
		}
	}
}

func TestManager_ConcurrentSnapshots(t *testing.T) {
	m := newTestManager(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.AdjustTemperature(1)
				_ = m.Snapshot()
			}
		}()
	}
	wg.Wait()
}
