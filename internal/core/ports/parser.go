package ports

import "go.trai.ch/carve/internal/core/domain"

// Parser defines the interface for turning source text into a FileModule.
//
//go:generate go run go.uber.org/mock/mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// Parse builds a FileModule from raw source text. basePath anchors
	// resolution of the module's own references; displayName is used in
	// diagnostics. Failure is reported by the caller, not retried.
	Parse(source []byte, basePath, displayName string) (*domain.FileModule, error)
}
