package spine

import (
	"errors"
	"fmt"

	"github.com/jclounge/spine-export/pkg/layers"
)

// ErrDuplicateLayerName is returned when two leaves in one export carry the
// same name. Slot names, attachment keys, and output image filenames are all
// derived from the layer name, so a collision would silently overwrite an
// earlier layer's data.
var ErrDuplicateLayerName = errors.New("duplicate layer name")

// FlattenOptions controls filtering and draw-order policy for Flatten.
type FlattenOptions struct {
	// VisibleOnly skips invisible nodes. The flag is checked at every level
	// of the tree, so an invisible group prunes its entire subtree even when
	// leaves inside it are marked visible.
	VisibleOnly bool

	// ReverseOrder keeps slots in traversal order. The default (false) emits
	// slots in reversed traversal order, so the first layer in the stack
	// (the one the editor draws on top) ends up last in the slot list, which
	// Spine draws in front.
	ReverseOrder bool
}

// Flattened is the result of walking a layer tree: the leaves to rasterize
// plus the skeleton fragments describing them.
type Flattened struct {
	// Leaves lists every leaf that passed the filter, in traversal order.
	Leaves []*layers.Leaf

	// Slots is the draw-ordered slot list per the ReverseOrder policy.
	Slots []Slot

	// Attachments holds the default-skin records, keyed by slot name.
	Attachments Skin
}

// Flatten walks the layer stack depth-first in native child order and
// collects every leaf into slot and attachment fragments with transformed
// coordinates. Group nesting does not otherwise affect the output: no nested
// bones are created and groups carry no transforms of their own.
//
// An empty or all-invisible tree yields empty (non-nil) results and no error.
func Flatten(nodes []layers.Node, canvas layers.Canvas, opts FlattenOptions) (*Flattened, error) {
	f := &Flattened{
		Slots:       []Slot{},
		Attachments: Skin{},
	}

	for _, n := range nodes {
		if err := f.walk(n, canvas, opts); err != nil {
			return nil, err
		}
	}

	if !opts.ReverseOrder {
		reverseSlots(f.Slots)
	}
	return f, nil
}

func (f *Flattened) walk(n layers.Node, canvas layers.Canvas, opts FlattenOptions) error {
	switch v := n.(type) {
	case *layers.Group:
		if opts.VisibleOnly && !v.Visible {
			return nil
		}
		for _, child := range v.Children {
			if err := f.walk(child, canvas, opts); err != nil {
				return err
			}
		}
		return nil

	case *layers.Leaf:
		if opts.VisibleOnly && !v.Visible {
			return nil
		}
		if _, exists := f.Attachments[v.Name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateLayerName, v.Name)
		}

		x, y := Transform(v.OffsetX, v.OffsetY, v.Width, v.Height, canvas.Width, canvas.Height)

		f.Leaves = append(f.Leaves, v)
		f.Slots = append(f.Slots, Slot{Name: v.Name, Bone: RootBone, Attachment: v.Name})
		f.Attachments[v.Name] = map[string]Attachment{
			v.Name: {X: x, Y: y, Rotation: 0, Width: v.Width, Height: v.Height},
		}
		return nil

	default:
		return fmt.Errorf("unknown layer node type %T", n)
	}
}

// Skeleton assembles the full manifest from the flattened fragments.
func (f *Flattened) Skeleton() *Skeleton {
	s := NewSkeleton()
	s.Slots = append(s.Slots, f.Slots...)
	for name, att := range f.Attachments {
		s.Skins[DefaultSkin][name] = att
	}
	return s
}

func reverseSlots(slots []Slot) {
	for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
		slots[i], slots[j] = slots[j], slots[i]
	}
}
