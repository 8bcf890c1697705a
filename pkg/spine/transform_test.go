package spine

import "testing"

func TestTransform(t *testing.T) {
	tests := []struct {
		name                 string
		offsetX, offsetY     int
		width, height        int
		canvasW, canvasH     int
		wantX, wantY         int
	}{
		{
			name:    "documented example",
			offsetX: 10, offsetY: 20,
			width: 100, height: 50,
			canvasW: 200, canvasH: 200,
			wantX: -40, wantY: 155,
		},
		{
			name:    "layer filling the whole canvas",
			offsetX: 0, offsetY: 0,
			width: 200, height: 200,
			canvasW: 200, canvasH: 200,
			wantX: 0, wantY: 100,
		},
		{
			name:    "odd sizes truncate the half spans",
			offsetX: 0, offsetY: 0,
			width: 5, height: 5,
			canvasW: 5, canvasH: 5,
			// half of 5 is 2, not 2.5 rounded
			wantX: 0, wantY: 3,
		},
		{
			name:    "layer at the canvas origin",
			offsetX: 0, offsetY: 0,
			width: 10, height: 10,
			canvasW: 100, canvasH: 100,
			wantX: -45, wantY: 95,
		},
		{
			name:    "layer at the bottom-right corner",
			offsetX: 90, offsetY: 90,
			width: 10, height: 10,
			canvasW: 100, canvasH: 100,
			wantX: 45, wantY: 5,
		},
		{
			name:    "one-pixel layer centered on a one-pixel canvas",
			offsetX: 0, offsetY: 0,
			width: 1, height: 1,
			canvasW: 1, canvasH: 1,
			wantX: 0, wantY: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Transform(tt.offsetX, tt.offsetY, tt.width, tt.height, tt.canvasW, tt.canvasH)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Transform() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
