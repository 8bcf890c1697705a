package spineexport

import (
	"fmt"

	"github.com/jclounge/spine-export/pkg/exporter"
	"github.com/jclounge/spine-export/pkg/layers"
	"github.com/jclounge/spine-export/pkg/spine"
)

// Version is the released version of the exporter.
const Version = "0.3.0"

// Options configures one export.
type Options struct {
	Document     *layers.Document // in-memory document; takes precedence over DocumentPath
	DocumentPath string           // JSON layer-document descriptor

	OutputDir   string // must exist; "" means the current directory
	Name        string // manifest base name; "" derives from the document name
	Compression int    // PNG compression level 0-9

	ExportHidden     bool // include invisible layers (visible-only is the default)
	ReverseDrawOrder bool // keep slots in traversal order instead of reversing
	Autocrop         bool // trim each leaf to its opaque bounds before export

	Logger Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the export output.
type Result struct {
	Skeleton     *spine.Skeleton
	DocumentName string
	Images       []exporter.ExportedImage
	JSONPath     string
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// Run executes the export pipeline: load the document, optionally autocrop,
// flatten the layer tree into skeleton fragments, write one PNG per leaf,
// and write the skeleton manifest.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}

	doc := opts.Document
	if doc == nil {
		if opts.DocumentPath == "" {
			return nil, fmt.Errorf("no document: set Document or DocumentPath")
		}
		opts.logInfo("Loading document %s...", opts.DocumentPath)
		loaded, err := layers.LoadDocument(opts.DocumentPath)
		if err != nil {
			return nil, fmt.Errorf("load document: %w", err)
		}
		doc = loaded
	}
	opts.logInfo("Document: %s (%dx%d)", doc.Name, doc.Canvas.Width, doc.Canvas.Height)

	nodes := doc.Layers
	if opts.Autocrop {
		opts.logInfo("Autocropping layers...")
		nodes = layers.Autocrop(nodes)
	}

	opts.logInfo("Flattening layer tree...")
	flat, err := spine.Flatten(nodes, doc.Canvas, spine.FlattenOptions{
		VisibleOnly:  !opts.ExportHidden,
		ReverseOrder: opts.ReverseDrawOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("flatten layers: %w", err)
	}
	opts.logInfo("Flattened %d layer(s)", len(flat.Leaves))

	cfg := exporter.Config{
		OutputDir:   opts.OutputDir,
		Compression: opts.Compression,
	}

	opts.logInfo("Exporting layer images to %s...", opts.OutputDir)
	images, err := exporter.ExportImages(flat.Leaves, cfg)
	if err != nil {
		return nil, fmt.Errorf("export images: %w", err)
	}
	opts.logInfo("Exported %d image(s)", len(images))

	name := opts.Name
	if name == "" {
		name = doc.Name
	}

	skeleton := flat.Skeleton()
	jsonPath, err := exporter.WriteSkeleton(skeleton, cfg, name)
	if err != nil {
		return nil, fmt.Errorf("write skeleton: %w", err)
	}
	opts.logInfo("Wrote skeleton %s", jsonPath)

	return &Result{
		Skeleton:     skeleton,
		DocumentName: doc.Name,
		Images:       images,
		JSONPath:     jsonPath,
	}, nil
}
