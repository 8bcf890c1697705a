// Package spineexport exports a layered image document into a 2D
// skeletal-animation asset bundle: one PNG per leaf layer plus a Spine JSON
// skeleton describing each image's placement on a single root bone.
//
// The CLI lives in cmd/spine-export; this root package exposes the same
// pipeline as a Go API so that callers can embed the export in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named spineexport:
//
//	import "github.com/jclounge/spine-export" // package spineexport
//
// # Quick start
//
//	result, err := spineexport.Run(spineexport.Options{
//	    DocumentPath: "hero.json",
//	    OutputDir:    "assets",
//	    Autocrop:     true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.JSONPath)
//
// # Documents
//
// A document is a JSON descriptor naming the canvas size and the layer
// stack. Leaf layers reference PNG files relative to the descriptor; group
// layers nest further layer lists. Callers holding an in-memory tree can
// set [Options.Document] directly instead of a path.
//
// # Draw order
//
// Slots are emitted back-to-front: the first layer in the stack, the one
// the editor draws on top, ends up last in the slot list, which Spine
// draws in front. Set [Options.ReverseDrawOrder] to keep slots in stack
// order instead.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
package spineexport
