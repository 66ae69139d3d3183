// Package eval implements module instantiation: evaluating a file's own
// scope into a geometry node tree.
package eval

// Context is one scope in the evaluation context chain. Each instantiated
// file gets a fresh child context representing its own namespace.
type Context struct {
	parent *Context
	vars   map[string]string
}

// NewContext creates a root context.
func NewContext() *Context {
	return &Context{vars: make(map[string]string)}
}

// Child creates a context scoped under c.
func (c *Context) Child() *Context {
	return &Context{parent: c, vars: make(map[string]string)}
}

// Set binds a name in this scope.
func (c *Context) Set(name, value string) {
	c.vars[name] = value
}

// Lookup resolves a name, walking the parent chain.
func (c *Context) Lookup(name string) (string, bool) {
	for scope := c; scope != nil; scope = scope.parent {
		if value, ok := scope.vars[name]; ok {
			return value, true
		}
	}
	return "", false
}
