package models

type UserRole string
type OrderStatus string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleArtist   UserRole = "artist"
	UserRoleAdmin    UserRole = "admin"
)

// Order lifecycle: waiting -> paid -> working -> done.
// The state machine is linear; there is no cancellation state.
const (
	OrderStatusWaiting OrderStatus = "waiting"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusWorking OrderStatus = "working"
	OrderStatusDone    OrderStatus = "done"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusWaiting: 0,
	OrderStatusPaid:    1,
	OrderStatusWorking: 2,
	OrderStatusDone:    3,
}

// IsValidOrderStatus reports whether s names a known lifecycle state.
func IsValidOrderStatus(s OrderStatus) bool {
	_, ok := orderStatusRank[s]
	return ok
}

// IsForwardTransition reports whether moving from -> to does not go
// backwards. Re-issuing the current status counts as forward.
func IsForwardTransition(from, to OrderStatus) bool {
	fromRank, ok := orderStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := orderStatusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}
