package blackbody

// Collection holds the live body plus a bounded FIFO list of saved
// snapshot bodies used for comparison display. Snapshots are independent
// Body instances frozen at the temperature they were saved at; they never
// alias the live body.
type Collection struct {
	live  *Body
	saved []*Body
	cap   int
}

// NewCollection creates a collection with a live body at the given
// temperature. A non-positive history capacity falls back to the default.
func NewCollection(tempK float64, cal Calibration) *Collection {
	capacity := cal.HistoryCapacity
	if capacity <= 0 {
		capacity = DefaultCalibration().HistoryCapacity
	}
	return &Collection{
		live: NewBody(tempK, cal),
		cap:  capacity,
	}
}

// Live returns the live body.
func (c *Collection) Live() *Body {
	return c.live
}

// Saved returns the saved snapshots, oldest first. The returned slice is
// shared; callers must not mutate it.
func (c *Collection) Saved() []*Body {
	return c.saved
}

// Capacity returns the maximum number of retained snapshots.
func (c *Collection) Capacity() int {
	return c.cap
}

// Save appends a snapshot frozen at the live body's current temperature,
// evicting the oldest snapshot once the capacity is exceeded.
func (c *Collection) Save() *Body {
	snap := NewBody(c.live.Temperature(), c.live.Calibration())
	c.saved = append(c.saved, snap)
	if len(c.saved) > c.cap {
		c.saved = c.saved[len(c.saved)-c.cap:]
	}
	return snap
}

// Clear discards all saved snapshots.
func (c *Collection) Clear() {
	c.saved = nil
}

// Reset restores the live body to its construction temperature and clears
// the saved snapshots. Calling it twice is the same as calling it once.
func (c *Collection) Reset() {
	c.live.Reset()
	c.saved = nil
}
