package fs

import (
	"sync"
	"time"

	"github.com/aretw0/almanac/pkg/core"
)

// debouncer coalesces rapid change bursts per record id. Editors often
// produce several filesystem events for one logical save; only the
// last change within the interval is delivered.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timers   map[string]*time.Timer
	stopped  bool
	inFlight sync.WaitGroup
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		timers:   make(map[string]*time.Timer),
	}
}

// add schedules delivery of c via fire after the debounce interval,
// resetting any pending delivery for the same record id.
func (d *debouncer) add(c core.Change, fire func(core.Change)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if timer, ok := d.timers[c.ID]; ok {
		if timer.Stop() {
			d.inFlight.Done()
		}
	}

	d.inFlight.Add(1)
	d.timers[c.ID] = time.AfterFunc(d.interval, func() {
		defer d.inFlight.Done()

		d.mu.Lock()
		delete(d.timers, c.ID)
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			fire(c)
		}
	})
}

// stopAndWait refuses new changes, cancels pending timers and waits
// for in-flight deliveries, up to the given timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for id, timer := range d.timers {
		if timer.Stop() {
			d.inFlight.Done()
		}
		delete(d.timers, id)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.inFlight.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
