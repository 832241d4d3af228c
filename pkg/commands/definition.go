package commands

// ArgPolicy declares how a command treats its free-text argument.
type ArgPolicy int

const (
	// ArgIgnored accepts any argument, including none.
	ArgIgnored ArgPolicy = iota
	// ArgRequired rejects empty or whitespace-only arguments.
	ArgRequired
)

type Definition struct {
	Name        string
	Description string
	// Usage is the invocation form, e.g. "/epic-create <description>".
	Usage   string
	Args    ArgPolicy
	Handler Handler
}
