package entity

// OrderStatus is the lifecycle state of an order. The forward path is strictly
// linear; cancelled and returned are absorbing and reachable only through
// explicit administrative actions, never through NextStatus.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
)

// nextStatus maps each non-terminal state to its single successor.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusConfirmed,
	OrderStatusConfirmed: OrderStatusPacked,
	OrderStatusPacked:    OrderStatusShipped,
}

// NextStatus returns the successor of the given status. ok is false for every
// terminal state: shipped, cancelled and returned have no successor.
func NextStatus(current OrderStatus) (next OrderStatus, ok bool) {
	next, ok = nextStatus[current]

	return next, ok
}

// IsTerminal reports whether no further transition is permitted from s.
func (s OrderStatus) IsTerminal() bool {
	_, ok := nextStatus[s]

	return !ok
}

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPacked,
		OrderStatusShipped, OrderStatusCancelled, OrderStatusReturned:
		return true
	}

	return false
}
