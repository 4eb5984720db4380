package encounter

import (
	"context"
	"time"
)

// Action is a delayed step run by the Scheduler.
type Action func(ctx context.Context)

// Scheduler holds at most one pending delayed action. Arming always replaces
// whatever was pending, and the action only runs from Tick, on the caller's
// goroutine.
type Scheduler struct {
	deadline time.Time
	action   Action
}

// Arm schedules action to run at the first Tick at or after now+delay,
// disarming any previously pending action.
func (s *Scheduler) Arm(now time.Time, delay time.Duration, action Action) {
	s.Disarm()
	s.deadline = now.Add(delay)
	s.action = action
}

// Disarm cancels the pending action, if any.
func (s *Scheduler) Disarm() {
	s.action = nil
	s.deadline = time.Time{}
}

// Armed reports whether an action is pending.
func (s *Scheduler) Armed() bool {
	return s.action != nil
}

// Deadline returns when the pending action is due, and whether one is pending.
func (s *Scheduler) Deadline() (time.Time, bool) {
	return s.deadline, s.action != nil
}

// Tick runs the pending action if it is due. The scheduler is disarmed
// before the action runs, so the action may arm the next step.
// Returns true if an action ran.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) bool {
	if s.action == nil || now.Before(s.deadline) {
		return false
	}
	action := s.action
	s.Disarm()
	action(ctx)
	return true
}
