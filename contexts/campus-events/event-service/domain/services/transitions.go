package services

import "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"

// CanTransition encodes the event status state machine:
// PENDING -> APPROVED | REJECTED, and any non-terminal status -> CANCELLED.
// Nothing leaves CANCELLED and no transition is reversible.
func CanTransition(from, to entities.EventStatus) bool {
	if from == entities.StatusCancelled {
		return false
	}
	switch to {
	case entities.StatusApproved, entities.StatusRejected:
		return from == entities.StatusPending
	case entities.StatusCancelled:
		return true
	default:
		return false
	}
}
