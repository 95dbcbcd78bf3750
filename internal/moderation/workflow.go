package moderation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/looplineapp/loopline-backend/internal/models"
)

// Report statuses. Pending is initial; resolved and dismissed are terminal.
const (
	StatusPending   = "pending"
	StatusReviewed  = "reviewed"
	StatusResolved  = "resolved"
	StatusDismissed = "dismissed"

	// StatusAll is a filter sentinel, never stored.
	StatusAll = "all"
)

// Report reasons accepted from the client.
var ValidReasons = map[string]bool{
	"spam":           true,
	"harassment":     true,
	"inappropriate":  true,
	"misinformation": true,
	"violence":       true,
	"hate_speech":    true,
	"other":          true,
}

var (
	ErrInvalidTransition = errors.New("invalid report status transition")
	// ErrResolutionRequired is an InvalidTransition-class validation error.
	ErrResolutionRequired = fmt.Errorf("%w: resolution text is required", ErrInvalidTransition)
	ErrUnknownStatus      = errors.New("unknown report status")
)

// transitions lists the reachable target statuses per current status.
// pending -> reviewed | dismissed, reviewed -> resolved | dismissed.
var transitions = map[string][]string{
	StatusPending:   {StatusReviewed, StatusDismissed},
	StatusReviewed:  {StatusResolved, StatusDismissed},
	StatusResolved:  {},
	StatusDismissed: {},
}

// ValidStatus reports whether s is a storable report status.
func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are defined from s.
func IsTerminal(s string) bool {
	return ValidStatus(s) && len(transitions[s]) == 0
}

// CanTransition reports whether target is reachable from current.
func CanTransition(current, target string) bool {
	for _, t := range transitions[current] {
		if t == target {
			return true
		}
	}
	return false
}

const defaultResolution = "no action taken"

// Transition applies a status change to a copy of r and returns it. It is
// pure and deterministic: validation happens here, persistence is the
// caller's problem.
//
// Rules:
//   - target must be reachable from r.Status, else ErrInvalidTransition;
//   - resolving requires non-empty resolution text;
//   - dismissing with empty text records a default resolution;
//   - the first transition out of pending stamps ReviewedBy/ReviewedAt once,
//     later transitions never touch them.
func Transition(r models.Report, target, resolution string, actorID uuid.UUID, now time.Time) (models.Report, error) {
	if !ValidStatus(target) {
		return r, fmt.Errorf("%w: %q", ErrUnknownStatus, target)
	}
	if !CanTransition(r.Status, target) {
		return r, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, target)
	}

	resolution = strings.TrimSpace(resolution)
	switch target {
	case StatusResolved:
		if resolution == "" {
			return r, ErrResolutionRequired
		}
		r.Resolution = resolution
	case StatusDismissed:
		if resolution == "" {
			resolution = defaultResolution
		}
		r.Resolution = resolution
	}

	if r.ReviewedBy == nil {
		actor := actorID
		at := now
		r.ReviewedBy = &actor
		r.ReviewedAt = &at
	}
	r.Status = target

	return r, nil
}
