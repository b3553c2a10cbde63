package carousel

import "github.com/framecast-cli/framecast/catalog"

// Frame is one fully resolved slide handed to the renderer: the asset
// descriptor, a layout hint, and whether a live remote session owns it.
type Frame struct {
	Asset    catalog.Asset
	Layout   catalog.Layout
	Mirrored bool
}

// Renderer displays frames. Render must not block; the controller calls it
// from its autoplay loop and from stream-driven transitions.
type Renderer interface {
	Render(Frame)
}
