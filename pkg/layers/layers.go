package layers

import "image"

// Canvas holds the pixel dimensions of the enclosing document. It is fixed
// for the duration of one export.
type Canvas struct {
	Width  int
	Height int
}

// Node is a single entry in a document's layer stack: either a *Group
// containing an ordered run of child nodes, or a *Leaf carrying raster
// content. The two variants are closed over this package; traversal code
// distinguishes them with a type switch.
//
// A node tree is read-only input to the export pipeline. Operations that
// need to change layer geometry (see Autocrop) return new nodes instead of
// mutating the originals.
type Node interface {
	layerNode()
}

// Group is a container layer. It contributes no raster content of its own;
// its children are ordered front-to-back the way the source editor stacks
// them, and are owned exclusively by the group.
type Group struct {
	Name     string
	Visible  bool
	Children []Node
}

func (*Group) layerNode() {}

// Leaf is a rasterizable layer. Offsets are in pixels relative to the
// canvas top-left corner, with y growing downward.
type Leaf struct {
	Name    string
	Visible bool
	OffsetX int
	OffsetY int
	Width   int
	Height  int
	Raster  image.Image // nil when the leaf has no pixel content attached
}

func (*Leaf) layerNode() {}

// Document is a layered image document: a canvas plus the root layer stack.
type Document struct {
	Name   string
	Canvas Canvas
	Layers []Node
}
