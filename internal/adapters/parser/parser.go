// Package parser implements the source-file parser for the carve modeling
// language.
package parser

import (
	"regexp"
	"strings"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Parser = (*Parser)(nil)

var identRegex = regexp.MustCompile(`^[$A-Za-z_][A-Za-z0-9_]*$`)

// Parser implements ports.Parser. The grammar is line-oriented: external
// reference declarations (`use <ref>`, `include <ref>`), assignments
// (`name = expr;`) and module calls (`name(args);`). Line comments start
// with `//`.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a FileModule from raw source text. External references are
// recorded exactly as written; no resolution happens here.
func (p *Parser) Parse(source []byte, basePath, displayName string) (*domain.FileModule, error) {
	fm := domain.NewFileModule(basePath, displayName)

	for i, rawLine := range strings.Split(string(source), "\n") {
		line := stripComment(rawLine)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := p.parseLine(fm, line, i+1); err != nil {
			return nil, zerr.With(err, "file", displayName)
		}
	}

	return fm, nil
}

func (p *Parser) parseLine(fm *domain.FileModule, line string, lineNo int) error {
	if ref, kind, ok := parseExternal(line); ok {
		switch kind {
		case domain.KindUse:
			fm.AddUse(ref)
		case domain.KindInclude:
			fm.AddInclude(ref)
		}
		return nil
	}

	stmt := strings.TrimSpace(line)
	if !strings.HasSuffix(stmt, ";") {
		return zerr.With(zerr.Wrap(domain.ErrParseFailed, "missing terminating ';'"), "line", lineNo)
	}
	stmt = strings.TrimSpace(strings.TrimSuffix(stmt, ";"))

	if name, value, ok := splitAssignment(stmt); ok {
		fm.AddStatement(domain.Statement{
			Kind:  domain.StmtAssign,
			Line:  lineNo,
			Name:  name,
			Value: value,
		})
		return nil
	}

	if name, args, ok := splitCall(stmt); ok {
		fm.AddStatement(domain.Statement{
			Kind: domain.StmtCall,
			Line: lineNo,
			Name: name,
			Args: args,
		})
		return nil
	}

	return zerr.With(zerr.Wrap(domain.ErrParseFailed, "unrecognized statement"), "line", lineNo)
}

// parseExternal matches `use <ref>` and `include <ref>` declarations. A
// trailing semicolon is tolerated.
func parseExternal(line string) (ref string, kind domain.ExternalKind, ok bool) {
	var keyword string
	switch {
	case strings.HasPrefix(line, "use"):
		keyword, kind = "use", domain.KindUse
	case strings.HasPrefix(line, "include"):
		keyword, kind = "include", domain.KindInclude
	default:
		return "", 0, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(line, keyword))
	rest = strings.TrimSuffix(rest, ";")
	rest = strings.TrimSpace(rest)
	if len(rest) < 2 || rest[0] != '<' || rest[len(rest)-1] != '>' {
		return "", 0, false
	}
	return strings.TrimSpace(rest[1 : len(rest)-1]), kind, true
}

// splitAssignment matches `name = expr`. The `=` of comparison operators is
// not considered because expressions stay opaque at this level.
func splitAssignment(stmt string) (name, value string, ok bool) {
	idx := strings.Index(stmt, "=")
	if idx < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(stmt[:idx])
	value = strings.TrimSpace(stmt[idx+1:])
	if !identRegex.MatchString(name) || value == "" {
		return "", "", false
	}
	return name, value, true
}

// splitCall matches `name(arg, arg, ...)`.
func splitCall(stmt string) (name string, args []string, ok bool) {
	open := strings.Index(stmt, "(")
	if open < 0 || !strings.HasSuffix(stmt, ")") {
		return "", nil, false
	}
	name = strings.TrimSpace(stmt[:open])
	if !identRegex.MatchString(name) {
		return "", nil, false
	}

	inner := strings.TrimSpace(stmt[open+1 : len(stmt)-1])
	if inner == "" {
		return name, nil, true
	}
	for _, arg := range strings.Split(inner, ",") {
		args = append(args, strings.TrimSpace(arg))
	}
	return name, args, true
}

// stripComment removes a `//` line comment.
func stripComment(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		return line[:idx]
	}
	return line
}
