package lifecycle

import (
	"errors"

	"coffee-shop-api/models"
)

// happyPath is the ordered storefront lifecycle; cancelled is reachable from
// any non-terminal state.
var happyPath = []models.OrderStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
}

var allStatuses = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool, len(happyPath)+1)
	for _, s := range happyPath {
		m[s] = true
	}
	m[models.StatusCancelled] = true
	return m
}()

// customerCancellable lists the states a customer may still back out of.
// Once the baristas are working on it, only staff can cancel.
var customerCancellable = map[models.OrderStatus]bool{
	models.StatusPending:   true,
	models.StatusConfirmed: true,
}

var (
	ErrNotCancellable  = errors.New("order can no longer be cancelled")
	ErrAlreadyTerminal = errors.New("order is in a terminal state")
)

// IsValid reports whether status is one of the six known literals
func IsValid(status models.OrderStatus) bool {
	return allStatuses[status]
}

// IsTerminal reports whether no further transitions are expected
func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusDelivered || status == models.StatusCancelled
}

// CanCustomerCancel checks whether the customer may cancel an order in the
// given state.
func CanCustomerCancel(status models.OrderStatus) error {
	if IsTerminal(status) {
		return ErrAlreadyTerminal
	}
	if !customerCancellable[status] {
		return ErrNotCancellable
	}
	return nil
}

// Next returns the following happy-path status, or "" for terminal states
// and cancelled orders. Used by the admin dashboard's quick-advance action.
func Next(status models.OrderStatus) models.OrderStatus {
	for i, s := range happyPath {
		if s == status && i+1 < len(happyPath) {
			return happyPath[i+1]
		}
	}
	return ""
}

// All returns the six known statuses in lifecycle order
func All() []models.OrderStatus {
	return append(append([]models.OrderStatus{}, happyPath...), models.StatusCancelled)
}
