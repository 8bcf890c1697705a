// Package exporter persists export output: one PNG per flattened leaf plus
// the serialized skeleton manifest.
package exporter

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jclounge/spine-export/pkg/layers"
	"github.com/jclounge/spine-export/pkg/spine"
)

// ErrInvalidOutputDirectory is returned when the output directory does not
// exist or is not a directory. The check runs before any file is written so
// a bad destination never produces partial output.
var ErrInvalidOutputDirectory = errors.New("invalid output directory")

// Config holds output settings shared by all writes in one export.
type Config struct {
	OutputDir   string
	Compression int // PNG compression level, 0-9
}

// ExportedImage describes one written leaf raster.
type ExportedImage struct {
	LayerName string
	FileName  string
	Path      string
	Width     int
	Height    int
}

// ValidateOutputDir checks that dir exists and is a directory.
func ValidateOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidOutputDirectory, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", ErrInvalidOutputDirectory, dir)
	}
	return nil
}

// ExportImages writes one <layerName>.png per leaf into cfg.OutputDir. Each
// raster is redrawn into a fresh image sized to the layer's own bounds
// before encoding, so the file dimensions always match the manifest's
// width/height for that layer.
func ExportImages(leaves []*layers.Leaf, cfg Config) ([]ExportedImage, error) {
	if err := ValidateOutputDir(cfg.OutputDir); err != nil {
		return nil, err
	}

	level, err := compressionLevel(cfg.Compression)
	if err != nil {
		return nil, err
	}
	enc := &png.Encoder{CompressionLevel: level}

	images := make([]ExportedImage, 0, len(leaves))
	for _, leaf := range leaves {
		fileName, err := imageFileName(leaf.Name)
		if err != nil {
			return nil, err
		}

		raster, err := rasterize(leaf)
		if err != nil {
			return nil, fmt.Errorf("rasterize layer %q: %w", leaf.Name, err)
		}

		path := filepath.Join(cfg.OutputDir, fileName)
		if err := writePNG(enc, raster, path); err != nil {
			return nil, fmt.Errorf("save layer %q: %w", leaf.Name, err)
		}

		images = append(images, ExportedImage{
			LayerName: leaf.Name,
			FileName:  fileName,
			Path:      path,
			Width:     leaf.Width,
			Height:    leaf.Height,
		})
	}
	return images, nil
}

// WriteSkeleton serializes the manifest to <baseName>.json in cfg.OutputDir
// and returns the written path.
func WriteSkeleton(s *spine.Skeleton, cfg Config, baseName string) (string, error) {
	if err := ValidateOutputDir(cfg.OutputDir); err != nil {
		return "", err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("serialize skeleton: %w", err)
	}

	path := filepath.Join(cfg.OutputDir, baseName+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write skeleton %q: %w", path, err)
	}
	return path, nil
}

// rasterize redraws the leaf raster into an image of exactly the layer's own
// width and height, anchored at the origin.
func rasterize(leaf *layers.Leaf) (*image.RGBA, error) {
	if leaf.Raster == nil {
		return nil, fmt.Errorf("no raster content")
	}
	img := image.NewRGBA(image.Rect(0, 0, leaf.Width, leaf.Height))
	draw.Draw(img, img.Bounds(), leaf.Raster, leaf.Raster.Bounds().Min, draw.Src)
	return img, nil
}

func writePNG(enc *png.Encoder, img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := enc.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}

// imageFileName derives the output filename for a layer. Names are used
// verbatim (the manifest references them), so a name that would escape the
// output directory is rejected.
func imageFileName(layerName string) (string, error) {
	if layerName == "" {
		return "", fmt.Errorf("layer has an empty name")
	}
	if strings.ContainsAny(layerName, `/\`) {
		return "", fmt.Errorf("layer name %q contains a path separator", layerName)
	}
	return layerName + ".png", nil
}

// compressionLevel maps the editor's 0-9 compression scale onto the levels
// image/png exposes.
func compressionLevel(level int) (png.CompressionLevel, error) {
	switch {
	case level == 0:
		return png.NoCompression, nil
	case level >= 1 && level <= 3:
		return png.BestSpeed, nil
	case level >= 4 && level <= 7:
		return png.DefaultCompression, nil
	case level >= 8 && level <= 9:
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("compression level %d out of range 0-9", level)
	}
}
