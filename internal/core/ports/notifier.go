package ports

// Notifier is the fire-and-forget user-visible notification sink. Stores
// write success and failure toasts to it on user-initiated actions; it is
// never queried.
type Notifier interface {
	Success(message string)
	Error(message string)
}
