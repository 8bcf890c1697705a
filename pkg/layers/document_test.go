package layers

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{G: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func writeTestDocument(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "body.png"), 8, 12)
	writeTestPNG(t, filepath.Join(dir, "eyes.png"), 4, 2)

	path := writeTestDocument(t, dir, "hero.json", `{
		"width": 64,
		"height": 64,
		"layers": [
			{"name": "face", "layers": [
				{"name": "eyes", "x": 10, "y": 6, "image": "eyes.png"}
			]},
			{"name": "body", "x": 3, "y": 20, "visible": false, "image": "body.png"}
		]
	}`)

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() error: %v", err)
	}

	if doc.Name != "hero" {
		t.Errorf("name = %q, want %q (derived from the file name)", doc.Name, "hero")
	}
	if doc.Canvas.Width != 64 || doc.Canvas.Height != 64 {
		t.Errorf("canvas = %dx%d, want 64x64", doc.Canvas.Width, doc.Canvas.Height)
	}
	if len(doc.Layers) != 2 {
		t.Fatalf("len(layers) = %d, want 2", len(doc.Layers))
	}

	group, ok := doc.Layers[0].(*Group)
	if !ok {
		t.Fatalf("first layer is %T, want *Group", doc.Layers[0])
	}
	if !group.Visible {
		t.Error("group without a visible key must default to visible")
	}
	if len(group.Children) != 1 {
		t.Fatalf("len(group children) = %d, want 1", len(group.Children))
	}
	eyes := group.Children[0].(*Leaf)
	if eyes.OffsetX != 10 || eyes.OffsetY != 6 {
		t.Errorf("eyes offset = (%d, %d), want (10, 6)", eyes.OffsetX, eyes.OffsetY)
	}
	if eyes.Width != 4 || eyes.Height != 2 {
		t.Errorf("eyes size = %dx%d, want 4x2 (taken from the raster)", eyes.Width, eyes.Height)
	}

	body, ok := doc.Layers[1].(*Leaf)
	if !ok {
		t.Fatalf("second layer is %T, want *Leaf", doc.Layers[1])
	}
	if body.Visible {
		t.Error("body should be invisible")
	}
	if body.Width != 8 || body.Height != 12 {
		t.Errorf("body size = %dx%d, want 8x12", body.Width, body.Height)
	}
	if body.Raster == nil {
		t.Error("body raster should be decoded")
	}
}

func TestLoadDocumentExplicitName(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"), 2, 2)
	path := writeTestDocument(t, dir, "doc.json",
		`{"name": "goblin", "width": 10, "height": 10, "layers": [{"name": "a", "image": "a.png"}]}`)

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() error: %v", err)
	}
	if doc.Name != "goblin" {
		t.Errorf("name = %q, want %q", doc.Name, "goblin")
	}
}

func TestLoadDocumentErrors(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"), 2, 2)

	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{
			name:    "zero canvas",
			content: `{"width": 0, "height": 10, "layers": []}`,
			wantSub: "not positive",
		},
		{
			name:    "leaf and group at once",
			content: `{"width": 10, "height": 10, "layers": [{"name": "x", "image": "a.png", "layers": []}]}`,
			wantSub: "both an image and sublayers",
		},
		{
			name:    "neither leaf nor group",
			content: `{"width": 10, "height": 10, "layers": [{"name": "x"}]}`,
			wantSub: "neither an image nor sublayers",
		},
		{
			name:    "missing layer name",
			content: `{"width": 10, "height": 10, "layers": [{"image": "a.png"}]}`,
			wantSub: "missing a name",
		},
		{
			name:    "missing raster file",
			content: `{"width": 10, "height": 10, "layers": [{"name": "x", "image": "nope.png"}]}`,
			wantSub: "open raster",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestDocument(t, dir, "bad.json", tt.content)
			_, err := LoadDocument(path)
			if err == nil {
				t.Fatal("LoadDocument() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("LoadDocument() succeeded for a missing file")
	}
}
