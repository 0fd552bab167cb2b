package ports

// Notifier surfaces transient messages (toasts) to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
func (NopNotifier) Info(string)    {}
