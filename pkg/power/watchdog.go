// Package power emulates the watchdog and power-down sleep of the MCU on a
// host, so the single-shot measurement cycle can be re-run by "resets".
package power

import (
	"context"
	"log"
	"sync"
	"time"
)

// Watchdog resets the emulated device when its timer expires. A reset wakes
// EnterLowPowerSleep and starts the next boot in Boot.
type Watchdog struct {
	ctx context.Context

	mu       sync.Mutex
	timer    *time.Timer
	reset    chan struct{} // closed when the watchdog of the current boot fires
	sleeping bool
	resets   int
	hangs    int
}

// NewWatchdog creates a disarmed Watchdog. Cancelling ctx wakes any sleeper
// and stops Boot.
func NewWatchdog(ctx context.Context) *Watchdog {
	return &Watchdog{
		ctx:   ctx,
		reset: make(chan struct{}),
	}
}

// ArmWatchdog (re)starts the watchdog timer of the current boot with period d.
func (w *Watchdog) ArmWatchdog(d time.Duration) {
	w.session().ArmWatchdog(d)
}

// arm restarts the timer on behalf of the boot owning reset. A boot that has
// already been reset no longer owns the timer and is ignored.
func (w *Watchdog) arm(reset chan struct{}, d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if reset != w.reset {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(d, func() { w.fire(reset) })
}

// fire resets the boot that armed the timer; stale timers are ignored.
func (w *Watchdog) fire(reset chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if reset != w.reset {
		return
	}
	if !w.sleeping {
		w.hangs++
	}
	w.resets++
	w.timer = nil
	w.sleeping = false
	w.reset = make(chan struct{})
	close(reset)
}

// EnterLowPowerSleep blocks until the watchdog resets the device or the
// context is cancelled. Without an armed watchdog it sleeps until cancelled.
func (w *Watchdog) EnterLowPowerSleep() {
	w.session().EnterLowPowerSleep()
}

func (w *Watchdog) sleep(reset chan struct{}) {
	w.mu.Lock()
	if reset != w.reset {
		w.mu.Unlock()
		return
	}
	w.sleeping = true
	w.mu.Unlock()

	select {
	case <-reset:
	case <-w.ctx.Done():
	}
}

// session binds a handle to the boot that is currently running.
func (w *Watchdog) session() *Session {
	w.mu.Lock()
	defer w.mu.Unlock()
	return &Session{w: w, reset: w.reset}
}

// Session is the power handle of a single boot. Once the watchdog has reset
// that boot, ArmWatchdog does nothing and EnterLowPowerSleep returns at once,
// so an abandoned boot that wakes up late cannot touch the boots after it.
type Session struct {
	w     *Watchdog
	reset chan struct{}
}

// ArmWatchdog (re)starts the watchdog timer with period d.
func (s *Session) ArmWatchdog(d time.Duration) {
	s.w.arm(s.reset, d)
}

// EnterLowPowerSleep blocks until this boot is reset or the context is
// cancelled.
func (s *Session) EnterLowPowerSleep() {
	s.w.sleep(s.reset)
}

// Stale reports whether the watchdog has already reset this boot.
func (s *Session) Stale() bool {
	select {
	case <-s.reset:
		return true
	default:
		return false
	}
}

// Stop disarms the watchdog.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// Resets returns how many times the watchdog has fired.
func (w *Watchdog) Resets() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.resets
}

// Hangs returns how many resets hit a boot that never reached sleep.
func (w *Watchdog) Hangs() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hangs
}

// Boot powers up the device reboots times (0 = until the context is done).
// Each boot runs boot in its own goroutine under a watchdog armed with
// period, so a boot that hangs before sleeping is reset as well. The boot
// must drive the watchdog through the Session it is given.
func (w *Watchdog) Boot(period time.Duration, reboots int, boot func(p *Session)) error {
	defer w.Stop()

	for n := 0; reboots <= 0 || n < reboots; n++ {
		w.mu.Lock()
		w.sleeping = false
		hangs := w.hangs
		w.mu.Unlock()

		p := w.session()
		p.ArmWatchdog(period)

		done := make(chan struct{})
		go func() {
			defer close(done)
			boot(p)
		}()

		select {
		case <-p.reset:
		case <-w.ctx.Done():
			return w.ctx.Err()
		}

		if w.Hangs() > hangs {
			// The hung boot is abandoned; its stale Session keeps it away
			// from the watchdog if it ever resumes.
			log.Printf("Watchdog reset during boot %d: cycle did not finish", n+1)
			continue
		}

		select {
		case <-done:
		case <-w.ctx.Done():
			return w.ctx.Err()
		}
	}

	return nil
}
