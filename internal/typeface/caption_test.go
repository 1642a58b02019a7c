package typeface

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"
	"testing"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// loadFont loads the embedded font or fails the test.
func loadFont(t *testing.T) *Font {
	t.Helper()
	f, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return f
}

// createCanvas creates a canvas filled with a single color
func createCanvas(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// inkRect returns the bounding rectangle of pixels that differ from bg.
func inkRect(img *image.RGBA, bg color.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestLoad(t *testing.T) {
	f := loadFont(t)
	if f.lineRatio <= 0 || f.lineRatio > 3 {
		t.Errorf("lineRatio: got %f, want a value in (0,3]", f.lineRatio)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("Parse should fail for non-font data")
	}
}

func TestFaceSize(t *testing.T) {
	f := loadFont(t)

	small := f.FaceSize(300)
	large := f.FaceSize(600)
	if math.Abs(large-2*small) > 1e-9 {
		t.Errorf("FaceSize should scale linearly: got %f and %f", small, large)
	}

	// Line height in pixels is one sixth of the canvas height.
	if got := small * f.lineRatio; math.Abs(got-50) > 1e-9 {
		t.Errorf("line height for 300px canvas: got %f, want 50", got)
	}

	if got := f.FaceSize(1); got != minFaceSize {
		t.Errorf("FaceSize(1): got %f, want %f", got, minFaceSize)
	}
}

func TestLayout_Empty(t *testing.T) {
	f := loadFont(t)
	c, err := f.Layout("", 200)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	defer c.Close()

	if c.Ink != (image.Rectangle{}) {
		t.Errorf("Ink: got %v, want zero rectangle", c.Ink)
	}

	got := c.Offset(image.Rect(0, 0, 200, 100))
	if got != (image.Point{X: 100, Y: 50}) {
		t.Errorf("Offset: got %v, want (100,50)", got)
	}
}

func TestLayout_InkScalesWithHeight(t *testing.T) {
	f := loadFont(t)

	small, err := f.Layout("Hi", 300)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	defer small.Close()
	large, err := f.Layout("Hi", 600)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	defer large.Close()

	if small.Ink.Empty() || large.Ink.Empty() {
		t.Fatalf("Ink should not be empty: small %v, large %v", small.Ink, large.Ink)
	}

	// Cap height of "H" is below the 50px line height at 300px.
	if h := small.Ink.Dy(); h <= 0 || h > 50 {
		t.Errorf("ink height for 300px canvas: got %d, want (0,50]", h)
	}

	ratio := float64(large.Ink.Dx()) / float64(small.Ink.Dx())
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("ink width ratio: got %f, want about 2", ratio)
	}
}

func TestLayout_InkStartsNearBaselineOrigin(t *testing.T) {
	f := loadFont(t)
	c, err := f.Layout("H", 600)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	defer c.Close()

	ascent := c.face.Metrics().Ascent.Ceil()
	if c.Ink.Max.Y > ascent+1 {
		t.Errorf("H should sit on the baseline at %d: ink %v", ascent, c.Ink)
	}
	if c.Ink.Min.X < 0 || c.Ink.Min.X > 20 {
		t.Errorf("H should start near x=0: ink %v", c.Ink)
	}
}

func TestOffset(t *testing.T) {
	c := &Caption{Ink: image.Rect(3, 10, 43, 30)} // 40x20 ink

	tests := []struct {
		name   string
		canvas image.Rectangle
		want   image.Point
	}{
		{"centered", image.Rect(0, 0, 100, 100), image.Point{30, 40}},
		{"odd remainder", image.Rect(0, 0, 101, 25), image.Point{30, 2}},
		{"too narrow", image.Rect(0, 0, 40, 100), image.Point{0, 40}},
		{"too short", image.Rect(0, 0, 100, 10), image.Point{30, 0}},
		{"translated canvas", image.Rect(10, 20, 110, 120), image.Point{40, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Offset(tt.canvas); got != tt.want {
				t.Errorf("Offset(%v): got %v, want %v", tt.canvas, got, tt.want)
			}
		})
	}
}

func TestDrawCentered(t *testing.T) {
	f := loadFont(t)
	canvas := createCanvas(600, 400, white)

	if err := f.DrawCentered(canvas, "Hi", black); err != nil {
		t.Fatalf("DrawCentered failed: %v", err)
	}

	c, err := f.Layout("Hi", 400)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	defer c.Close()

	want := c.Ink.Sub(c.Ink.Min).Add(c.Offset(canvas.Bounds()))
	got := inkRect(canvas, white)

	if got.Empty() {
		t.Fatal("no caption pixels were drawn")
	}
	if !got.In(want) {
		t.Errorf("drawn ink %v should lie within %v", got, want)
	}

	left, right := got.Min.X, 600-got.Max.X
	top, bottom := got.Min.Y, 400-got.Max.Y
	if d := left - right; d < -3 || d > 3 {
		t.Errorf("horizontal margins unbalanced: left %d, right %d", left, right)
	}
	if d := top - bottom; d < -3 || d > 3 {
		t.Errorf("vertical margins unbalanced: top %d, bottom %d", top, bottom)
	}
}

func TestDrawCentered_ForegroundColor(t *testing.T) {
	f := loadFont(t)
	bg := color.RGBA{255, 0, 0, 255}
	fg := color.RGBA{0, 255, 0, 255}
	canvas := createCanvas(600, 600, bg)

	if err := f.DrawCentered(canvas, "M", fg); err != nil {
		t.Fatalf("DrawCentered failed: %v", err)
	}

	solid := 0
	b := canvas.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := canvas.RGBAAt(x, y)
			if p == fg {
				solid++
			}
			// Every pixel blends between red and green.
			if p.B != 0 || p.A != 255 || int(p.R)+int(p.G) < 253 || int(p.R)+int(p.G) > 257 {
				t.Fatalf("pixel (%d,%d) = %v is not a red/green blend", x, y, p)
			}
		}
	}
	if solid == 0 {
		t.Error("no pixel carries the exact foreground color")
	}
}

func TestDrawCentered_Overflow(t *testing.T) {
	f := loadFont(t)
	canvas := createCanvas(40, 300, white)

	if err := f.DrawCentered(canvas, "a very long caption", black); err != nil {
		t.Fatalf("DrawCentered failed: %v", err)
	}

	got := inkRect(canvas, white)
	if got.Empty() {
		t.Fatal("no caption pixels were drawn")
	}
	if got.Min.X > 1 {
		t.Errorf("overflowing caption should start at the left edge: ink %v", got)
	}
}

func TestDrawCentered_EmptyText(t *testing.T) {
	f := loadFont(t)
	canvas := createCanvas(50, 50, white)

	if err := f.DrawCentered(canvas, "", black); err != nil {
		t.Fatalf("DrawCentered failed: %v", err)
	}
	if got := inkRect(canvas, white); !got.Empty() {
		t.Errorf("empty caption drew pixels at %v", got)
	}
}

func TestDrawCentered_Concurrent(t *testing.T) {
	f := loadFont(t)

	const workers = 8
	results := make([][]byte, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			canvas := createCanvas(240, 120, white)
			if err := f.DrawCentered(canvas, "240x120", black); err != nil {
				t.Errorf("DrawCentered failed: %v", err)
				return
			}
			results[i] = canvas.Pix
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if !bytes.Equal(results[0], results[i]) {
			t.Fatalf("worker %d drew different pixels than worker 0", i)
		}
	}
}
