package shipment_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Kishansuresh/pds-track/internal/modules/shipment"
)

func TestTracker_ArrivalFiresExactlyOnce(t *testing.T) {
	tr := shipment.NewTracker(5*time.Millisecond, 15*time.Millisecond)

	var fired int32
	done := make(chan string, 1)
	tr.Start("shp-1", func(id string) {
		atomic.AddInt32(&fired, 1)
		done <- id
	})

	select {
	case id := <-done:
		assert.Equal(t, "shp-1", id)
	case <-time.After(time.Second):
		t.Fatal("arrival callback never fired")
	}

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
	assert.False(t, tr.State().Active, "session closes once the callback fires")
}

func TestTracker_ArrivedStateBeforeCompletion(t *testing.T) {
	tr := shipment.NewTracker(50*time.Millisecond, time.Second)
	tr.Start("shp-1", nil)
	defer tr.Stop()

	st := tr.State()
	assert.True(t, st.Active)
	assert.False(t, st.Arrived)
	assert.Equal(t, "42 km/h", st.Speed)

	// Past the transit mark but before completion the vehicle reports
	// arrived while the session stays active.
	time.Sleep(150 * time.Millisecond)
	st = tr.State()
	assert.True(t, st.Active)
	assert.True(t, st.Arrived)
	assert.Equal(t, "0 km/h", st.Speed)
	assert.Equal(t, "Destination Reached", st.Location)
}

func TestTracker_StopCancelsCallback(t *testing.T) {
	tr := shipment.NewTracker(5*time.Millisecond, 15*time.Millisecond)

	var fired int32
	tr.Start("shp-1", func(string) { atomic.AddInt32(&fired, 1) })
	tr.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
	assert.Equal(t, shipment.TrackingState{}, tr.State())
}

func TestTracker_RestartReplacesSession(t *testing.T) {
	tr := shipment.NewTracker(5*time.Millisecond, 15*time.Millisecond)

	var firstFired int32
	done := make(chan string, 1)
	tr.Start("shp-1", func(string) { atomic.AddInt32(&firstFired, 1) })
	tr.Start("shp-2", func(id string) { done <- id })

	select {
	case id := <-done:
		assert.Equal(t, "shp-2", id)
	case <-time.After(time.Second):
		t.Fatal("replacement session never completed")
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&firstFired), "replaced session must not fire")
}
