package statemachine

import (
	"errors"
	"fmt"

	"catering-api/models"
)

// ErrInvalidTransition wraps every rejected status change.
var ErrInvalidTransition = errors.New("invalid status transition")

// validTransitions is the authoritative state machine definition: the
// normal path runs pending → confirmed → preparing → ready → delivered,
// and cancelled is reachable from any non-terminal state.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing: {models.StatusReady, models.StatusCancelled},
	models.StatusReady:     {models.StatusDelivered, models.StatusCancelled},
	models.StatusDelivered: {},
	models.StatusCancelled: {},
}

// Known reports whether s is a recognized order status.
func Known(s models.OrderStatus) bool {
	_, ok := validTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions exist from s.
func IsTerminal(s models.OrderStatus) bool {
	return Known(s) && len(validTransitions[s]) == 0
}

// Next returns all valid next states from a given state.
func Next(from models.OrderStatus) []models.OrderStatus {
	return validTransitions[from]
}

// CanTransition checks whether an order may move from one state to another.
func CanTransition(from, to models.OrderStatus) error {
	if !Known(to) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	for _, next := range validTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s to %s is not allowed. Valid transitions from %s are: %s",
		ErrInvalidTransition, from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := Next(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
