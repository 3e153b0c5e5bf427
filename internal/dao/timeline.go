// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import "time"

// Step states.
const (
	StepDone     = "done"
	StepCurrent  = "current"
	StepUpcoming = "upcoming"
	StepFailed   = "failed"
)

// TimelineStep is one status of a request's lifecycle.
type TimelineStep struct {
	Status string
	State  string
	At     *time.Time
}

// Timeline lays out a request's lifecycle for display. Rejected requests end
// at the rejection, return requests skip the active step.
func Timeline(r *Request) []TimelineStep {
	path := []string{StatusPending, StatusApproved, StatusActive, StatusReturned}
	if r.Kind == KindReturn {
		path = []string{StatusPending, StatusApproved, StatusReturned}
	}
	if r.Status == StatusRejected {
		path = []string{StatusPending}
		if _, ok := r.ChangedAt(StatusApproved); ok {
			path = append(path, StatusApproved)
		}
		path = append(path, StatusRejected)
	}

	current := -1
	for i, s := range path {
		if s == r.Status {
			current = i
		}
	}

	steps := make([]TimelineStep, 0, len(path))
	for i, s := range path {
		step := TimelineStep{Status: s, State: StepUpcoming}
		switch {
		case i < current:
			step.State = StepDone
		case i == current && s == StatusRejected:
			step.State = StepFailed
		case i == current && i == len(path)-1:
			step.State = StepDone
		case i == current:
			step.State = StepCurrent
		}
		if at, ok := r.ChangedAt(s); ok && step.State != StepUpcoming {
			step.At = &at
		}
		steps = append(steps, step)
	}

	return steps
}
