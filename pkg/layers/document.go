package layers

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/png" // document rasters are PNG files
	"os"
	"path/filepath"
	"strings"
)

// documentFile is the on-disk JSON descriptor for a layered document.
// Leaf rasters are referenced by path relative to the descriptor file.
type documentFile struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Layers []layerEntry `json:"layers"`
}

// layerEntry describes one layer entry. An entry with an "image" key is a
// leaf; an entry with a "layers" key is a group. Exactly one of the two
// must be present.
type layerEntry struct {
	Name    string      `json:"name"`
	Visible *bool       `json:"visible,omitempty"` // absent means visible
	X       int         `json:"x,omitempty"`
	Y       int         `json:"y,omitempty"`
	Image   string      `json:"image,omitempty"`
	Layers  []layerEntry `json:"layers,omitempty"`
}

// LoadDocument reads a JSON layer-document descriptor and decodes every
// referenced leaf raster. Leaf width and height are taken from the decoded
// image, not the descriptor.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", path, err)
	}

	var file documentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse document %q: %w", path, err)
	}

	if file.Width <= 0 || file.Height <= 0 {
		return nil, fmt.Errorf("document %q: canvas size %dx%d is not positive", path, file.Width, file.Height)
	}

	name := file.Name
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	baseDir := filepath.Dir(path)
	nodes, err := buildNodes(file.Layers, baseDir)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", path, err)
	}

	return &Document{
		Name:   name,
		Canvas: Canvas{Width: file.Width, Height: file.Height},
		Layers: nodes,
	}, nil
}

func buildNodes(entries []layerEntry, baseDir string) ([]Node, error) {
	nodes := make([]Node, 0, len(entries))
	for _, s := range entries {
		n, err := buildNode(s, baseDir)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func buildNode(s layerEntry, baseDir string) (Node, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("layer entry is missing a name")
	}

	visible := true
	if s.Visible != nil {
		visible = *s.Visible
	}

	switch {
	case s.Image != "" && s.Layers != nil:
		return nil, fmt.Errorf("layer %q has both an image and sublayers", s.Name)
	case s.Image == "" && s.Layers == nil:
		return nil, fmt.Errorf("layer %q has neither an image nor sublayers", s.Name)
	case s.Layers != nil:
		children, err := buildNodes(s.Layers, baseDir)
		if err != nil {
			return nil, err
		}
		return &Group{Name: s.Name, Visible: visible, Children: children}, nil
	}

	raster, err := loadRaster(filepath.Join(baseDir, s.Image))
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", s.Name, err)
	}
	bounds := raster.Bounds()

	return &Leaf{
		Name:    s.Name,
		Visible: visible,
		OffsetX: s.X,
		OffsetY: s.Y,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Raster:  raster,
	}, nil
}

func loadRaster(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode raster %q: %w", path, err)
	}
	return img, nil
}
