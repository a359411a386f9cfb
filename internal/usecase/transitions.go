package usecase

import "github.com/vmesquit/mesapos/internal/domain/model"

// forwardTransitions is the authoritative forward chain; skipping states is
// not allowed.
var forwardTransitions = map[model.OrderStatus]model.OrderStatus{
	model.OrderStatusWaiting:   model.OrderStatusPreparing,
	model.OrderStatusPreparing: model.OrderStatusReady,
	model.OrderStatusReady:     model.OrderStatusDelivered,
	model.OrderStatusDelivered: model.OrderStatusFinished,
}

// CanTransition reports whether an order may move between the two statuses.
// Any non-terminal status may be canceled; terminal statuses never change.
func CanTransition(from, to model.OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == model.OrderStatusCanceled {
		return true
	}
	return forwardTransitions[from] == to
}
