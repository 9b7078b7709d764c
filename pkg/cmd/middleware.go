package cmd

// Middleware wraps a command (e.g. logging, permission check, metrics).
// Adapters can use this same pattern; the wrapped type remains Command.
type Middleware func(Command) Command

// Apply wraps c with each middleware in turn; the last in the list becomes
// the outermost and runs first.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}
