package commands

// Level is the severity of a user notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier surfaces a message to the user without involving the agent conversation.
type Notifier interface {
	Notify(message string, level Level)
}

type NotifierFunc func(message string, level Level)

func (f NotifierFunc) Notify(message string, level Level) {
	f(message, level)
}
