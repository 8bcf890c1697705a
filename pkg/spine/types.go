// Package spine builds Spine skeleton data from a layered document's layer
// stack: it flattens the layer tree into draw-order-significant slots and
// converts each layer's placement into Spine's coordinate space.
//
// Spine JSON format: http://esotericsoftware.com/spine-json-format
package spine

// RootBone is the name of the single bone every exported slot attaches to.
const RootBone = "root"

// DefaultSkin is the name of the single skin the export populates.
const DefaultSkin = "default"

// Skeleton is the top-level Spine JSON document produced by an export: a
// trivial one-bone skeleton, the draw-ordered slot list, a single default
// skin, and an empty animation set.
type Skeleton struct {
	Bones      []Bone          `json:"bones"`
	Slots      []Slot          `json:"slots"`
	Skins      map[string]Skin `json:"skins"`
	Animations map[string]any  `json:"animations"`
}

// Bone is a skeletal joint. Exports emit exactly one, named "root".
type Bone struct {
	Name string `json:"name"`
}

// Slot is a named binding point on the skeleton displaying one attachment.
// The order of slots in the skeleton is draw order, first slot drawn
// furthest back.
type Slot struct {
	Name       string `json:"name"`
	Bone       string `json:"bone"`
	Attachment string `json:"attachment"`
}

// Skin maps slot names to their attachments, keyed by attachment name.
// Exports produce a one-to-one mapping: each slot holds a single attachment
// under the same name.
type Skin map[string]map[string]Attachment

// Attachment is an image placement record in Spine's coordinate space:
// center-of-image pivot, x measured from the canvas center, y measured
// upward from the canvas bottom. Rotation is always zero for exports.
type Attachment struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	Rotation int `json:"rotation"`
	Width    int `json:"width"`
	Height   int `json:"height"`
}

// NewSkeleton returns a skeleton with the root bone, no slots, an empty
// default skin, and an empty animation set. The empty collections are
// allocated so they serialize as [] and {} rather than null.
func NewSkeleton() *Skeleton {
	return &Skeleton{
		Bones:      []Bone{{Name: RootBone}},
		Slots:      []Slot{},
		Skins:      map[string]Skin{DefaultSkin: {}},
		Animations: map[string]any{},
	}
}
