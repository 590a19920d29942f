package email

// Provider sends plain transactional mail. The notification service treats
// every failure as non-fatal, so implementations only need to report errors,
// never retry.
type Provider interface {
	Send(to, subject, body string) error
}
