/*
scheduler.go - Nightly entitlement refresh scheduler

PURPOSE:
  Runs the entitlement re-accrual once per day, shortly after local
  midnight. Each pass recomputes every employee's remaining leave days from
  their current tenure and overwrites the stored balance.

DESIGN:
  - Background goroutine armed with a timer for the next local midnight;
    after each pass the timer is re-armed, so the job follows DST shifts.
  - A pass failure is logged and the scheduler keeps running; the next
    midnight retries naturally.
  - RunNow triggers an immediate pass (admin/testing).

USAGE:
  scheduler := NewEntitlementScheduler(employeeService)
  scheduler.Start()
  // ... later
  scheduler.Stop()

SEE ALSO:
  - leave/service.go: RefreshEntitlements (the work each pass performs)
*/
package api

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/warp/leave-engine/leave"
)

// EntitlementScheduler triggers the nightly balance refresh.
type EntitlementScheduler struct {
	Service *leave.EmployeeService

	timer   *time.Timer
	stop    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// NewEntitlementScheduler creates a scheduler over the employee service.
func NewEntitlementScheduler(service *leave.EmployeeService) *EntitlementScheduler {
	return &EntitlementScheduler{
		Service: service,
		stop:    make(chan struct{}),
	}
}

// Start begins the scheduler.
func (es *EntitlementScheduler) Start() {
	es.mu.Lock()
	defer es.mu.Unlock()

	if es.started {
		return
	}
	es.started = true

	// Fresh channel per run so a stopped scheduler can be started again.
	es.stop = make(chan struct{})

	wait := untilNextMidnight(time.Now())
	es.timer = time.NewTimer(wait)
	es.wg.Add(1)

	go es.run()

	log.Printf("[Scheduler] Started, first entitlement refresh in %v", wait.Round(time.Second))
}

// Stop stops the scheduler and waits for an in-flight pass to finish.
func (es *EntitlementScheduler) Stop() {
	es.mu.Lock()
	defer es.mu.Unlock()

	if !es.started {
		return
	}
	es.timer.Stop()
	close(es.stop)
	es.wg.Wait()
	es.started = false
	log.Println("[Scheduler] Stopped")
}

func (es *EntitlementScheduler) run() {
	defer es.wg.Done()

	for {
		select {
		case <-es.timer.C:
			es.runOnce()
			es.timer.Reset(untilNextMidnight(time.Now()))
		case <-es.stop:
			return
		}
	}
}

func (es *EntitlementScheduler) runOnce() {
	ctx := context.Background()
	start := time.Now()

	log.Println("[Scheduler] Running entitlement refresh")
	if err := es.Service.RefreshEntitlements(ctx); err != nil {
		log.Printf("[Scheduler] Entitlement refresh failed: %v", err)
		return
	}
	log.Printf("[Scheduler] Entitlement refresh completed in %v", time.Since(start).Round(time.Millisecond))
}

// RunNow triggers an immediate refresh (for testing/admin).
func (es *EntitlementScheduler) RunNow() {
	es.runOnce()
}

// untilNextMidnight returns the duration from now to the next local midnight.
func untilNextMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return next.Sub(now)
}
