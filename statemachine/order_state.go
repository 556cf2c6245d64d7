package statemachine

import (
	"delivery-api/models"
	"errors"
)

// Transition defines a valid state change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	{From: models.StatusPendente, To: models.StatusConfirmado},
	{From: models.StatusPendente, To: models.StatusCancelado},
	{From: models.StatusConfirmado, To: models.StatusEmPreparacao},
	{From: models.StatusConfirmado, To: models.StatusCancelado},
	{From: models.StatusEmPreparacao, To: models.StatusSaiuParaEntrega},
	{From: models.StatusSaiuParaEntrega, To: models.StatusEntregue},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given state
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks if an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed. Valid transitions from " + string(from) +
			" are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
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

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
