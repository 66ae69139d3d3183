package ports

// FontRegistry defines the interface for the font subsystem. Registration is
// fire-and-forget: the registry reports unreadable files itself and the
// module system does not track font freshness.
//
//go:generate go run go.uber.org/mock/mockgen -source=fonts.go -destination=mocks/mock_fonts.go -package=mocks
type FontRegistry interface {
	// RegisterFontFile makes the font at path available to the renderer.
	RegisterFontFile(path string)
}
