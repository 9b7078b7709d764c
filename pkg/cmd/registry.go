package cmd

import "sort"

// DefaultRegistry is the global registry used by adapters.
var DefaultRegistry = NewRegistry()

// Registry stores commands by name and alias. It does not perform dispatch;
// each adapter looks up commands and invokes them with its own context.
type Registry struct {
	commands map[string]Command
	aliases  map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		aliases:  make(map[string]string),
	}
}

// Register adds a command and indexes its aliases, if any. Aliases are read
// from the root command so middleware wrappers don't hide them.
func (r *Registry) Register(c Command) {
	r.commands[c.Name()] = c
	if a, ok := Root(c).(Aliased); ok {
		for _, alias := range a.Aliases() {
			r.aliases[alias] = c.Name()
		}
	}
}

// Get returns the command registered under name (or one of its aliases), or nil.
func (r *Registry) Get(name string) Command {
	if c, ok := r.commands[name]; ok {
		return c
	}
	if canonical, ok := r.aliases[name]; ok {
		return r.commands[canonical]
	}
	return nil
}

// GetAll returns all registered commands, sorted by name.
func (r *Registry) GetAll() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
