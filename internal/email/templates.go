package email

import "fmt"

// Fixed templates for order notifications. Kept as code rather than files:
// there are only two of them and they never vary per deployment.

func NewOrderMail(name, orderID string) (subject, body string) {
	subject = "SkyDraw: You have a new order!"
	body = fmt.Sprintf(
		"Hello %s,\n\nYou have a new order in your shop.\nOrder ID: %s\n\nPlease sign in to view the details.",
		name, orderID,
	)
	return subject, body
}

func PaymentConfirmedMail(name, orderID string) (subject, body string) {
	subject = "SkyDraw: Payment received"
	body = fmt.Sprintf(
		"Hello %s,\n\nThe customer has paid for order %s.\nPlease start working and update the order status.",
		name, orderID,
	)
	return subject, body
}
