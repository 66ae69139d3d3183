package eval

import (
	"fmt"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
)

// experimentalBuiltins maps builtin module names to the experimental feature
// gating them.
var experimentalBuiltins = map[string]string{
	"roof":        "roof",
	"textmetrics": "text-metrics",
}

// Evaluator instantiates a file module's own scope. Evaluation failures are
// contained at the file boundary: they are reported and yield a partial or
// empty tree, never an error to the caller, so one broken file cannot abort
// a batch run.
type Evaluator struct {
	config *domain.Config
	logger ports.Logger
}

// NewEvaluator creates an Evaluator with the given configuration.
func NewEvaluator(config *domain.Config, logger ports.Logger) *Evaluator {
	return &Evaluator{config: config, logger: logger}
}

// Instantiate creates an evaluation context scoped as a child of parent,
// initializes it with the file's own declarations and evaluates the file's
// own statements, collecting the produced nodes under a fresh root. External
// references are not evaluated here; they are handled by the dependency
// pass.
func (e *Evaluator) Instantiate(parent *Context, fm *domain.FileModule) *domain.Node {
	root := domain.NewRootNode()
	ctx := parent.Child()

	if err := e.initialize(ctx, fm); err != nil {
		e.logger.Error(err)
		return root
	}

	children, err := e.instantiateChildren(ctx, fm)
	root.Children = children
	if err != nil {
		e.logger.Error(err)
	}

	return root
}

// initialize populates the file's namespace with its assignments and rejects
// use of disabled experimental features before any node is produced.
func (e *Evaluator) initialize(ctx *Context, fm *domain.FileModule) error {
	for _, st := range fm.Scope() {
		if st.Kind != domain.StmtCall {
			continue
		}
		if feature, experimental := experimentalBuiltins[st.Name]; experimental && !e.config.FeatureEnabled(feature) {
			return zerr.With(
				zerr.With(
					zerr.Wrap(domain.ErrFeatureDisabled, fmt.Sprintf("%q requires the %q feature", st.Name, feature)),
					"file", fm.DisplayName(),
				),
				"line", st.Line,
			)
		}
	}

	for _, st := range fm.Scope() {
		if st.Kind == domain.StmtAssign {
			ctx.Set(st.Name, e.resolveValue(ctx, st.Value))
		}
	}
	return nil
}

// instantiateChildren evaluates the call statements in order. On an
// evaluation error the children collected so far are returned along with
// the error.
func (e *Evaluator) instantiateChildren(ctx *Context, fm *domain.FileModule) ([]*domain.Node, error) {
	var children []*domain.Node

	for _, st := range fm.Scope() {
		if st.Kind != domain.StmtCall {
			continue
		}

		args := make([]string, len(st.Args))
		for i, arg := range st.Args {
			args[i] = e.resolveValue(ctx, arg)
		}

		switch st.Name {
		case "assert":
			if len(args) > 0 && (args[0] == "false" || args[0] == "0") {
				return children, zerr.With(
					zerr.With(
						zerr.Wrap(domain.ErrEvaluationAborted, "assertion failed"),
						"file", fm.DisplayName(),
					),
					"line", st.Line,
				)
			}
		case "echo":
			e.logger.Info(fmt.Sprintf("ECHO: %v", args))
		default:
			children = append(children, &domain.Node{Name: st.Name, Args: args})
		}
	}

	return children, nil
}

// resolveValue substitutes a bound name with its value; anything else stays
// an opaque expression.
func (e *Evaluator) resolveValue(ctx *Context, expr string) string {
	if value, ok := ctx.Lookup(expr); ok {
		return value
	}
	return expr
}
