package shipment

import (
	"sync"
	"time"
)

// Default tracking schedule: the vehicle finishes driving at 8s and the
// session closes, firing the arrival callback, at 9.5s.
const (
	DefaultTransitDuration  = 8 * time.Second
	DefaultCompleteDuration = 9500 * time.Millisecond
)

// TrackingState is what the tracking view renders. There is no real
// position feed; speed and coordinates are fixed per state.
type TrackingState struct {
	ShipmentID string `json:"shipment_id"`
	Active     bool   `json:"active"`
	Arrived    bool   `json:"arrived"`
	Speed      string `json:"speed"`
	Location   string `json:"location"`
}

const (
	movingSpeed    = "42 km/h"
	arrivedSpeed   = "0 km/h"
	movingLocation = "12.9716° N, 77.5946° E"
	arrivedLabel   = "Destination Reached"
)

// Tracker runs the one-shot arrival simulation for the shipment being
// tracked. Starting a new shipment replaces the current session and resets
// the schedule; stopping cancels both pending timers so a dismissed session
// never fires its callback.
type Tracker struct {
	mu       sync.Mutex
	transit  time.Duration
	complete time.Duration
	current  *session
}

type session struct {
	shipmentID string
	arrived    bool
	arriveT    *time.Timer
	closeT     *time.Timer
}

// NewTracker creates a tracker with the given schedule. Durations are
// injectable so tests can run on a millisecond clock.
func NewTracker(transit, complete time.Duration) *Tracker {
	return &Tracker{transit: transit, complete: complete}
}

// Start begins tracking a shipment. At t0+transit the session is marked
// arrived (observable state only); at t0+complete onArrival fires exactly
// once with the shipment id and the session closes.
func (t *Tracker) Start(shipmentID string, onArrival func(shipmentID string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()

	s := &session{shipmentID: shipmentID}
	s.arriveT = time.AfterFunc(t.transit, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.current == s {
			s.arrived = true
		}
	})
	s.closeT = time.AfterFunc(t.complete, func() {
		t.mu.Lock()
		if t.current != s {
			t.mu.Unlock()
			return
		}
		t.current = nil
		t.mu.Unlock()
		if onArrival != nil {
			onArrival(shipmentID)
		}
	})
	t.current = s
}

// Stop cancels the active session, if any. The arrival callback will not
// fire after Stop returns.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Tracker) stopLocked() {
	if t.current == nil {
		return
	}
	t.current.arriveT.Stop()
	t.current.closeT.Stop()
	t.current = nil
}

// State reports the current tracking view state.
func (t *Tracker) State() TrackingState {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return TrackingState{}
	}
	st := TrackingState{
		ShipmentID: t.current.shipmentID,
		Active:     true,
		Arrived:    t.current.arrived,
		Speed:      movingSpeed,
		Location:   movingLocation,
	}
	if st.Arrived {
		st.Speed = arrivedSpeed
		st.Location = arrivedLabel
	}
	return st
}
