package domain

// StatementKind discriminates the statement forms of a file's own scope.
type StatementKind uint8

const (
	// StmtAssign binds a name to an expression in the file's namespace.
	StmtAssign StatementKind = iota
	// StmtCall invokes a module and produces a geometry node.
	StmtCall
)

// Statement is one parsed statement of a file's own scope. External
// references are not statements; they live in the file's external registry.
type Statement struct {
	Kind StatementKind
	Line int

	// Name is the assignment target for StmtAssign, or the invoked module
	// name for StmtCall.
	Name string

	// Value is the raw right-hand side expression for StmtAssign.
	Value string

	// Args holds the raw argument expressions for StmtCall.
	Args []string
}
