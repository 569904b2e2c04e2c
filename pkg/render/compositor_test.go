package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/standings/pkg/errors"
	"github.com/matzehuels/standings/pkg/observability"
	"github.com/matzehuels/standings/pkg/standings"
)

func newTestCompositor(t *testing.T) *Compositor {
	t.Helper()
	c, err := NewCompositor(WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	return c
}

// alEast has wins 100..80 and 162 games per team.
func alEast() []standings.TeamRecord {
	names := []string{"Baltimore", "NY Yankees", "Boston", "Tampa Bay", "Toronto"}
	out := make([]standings.TeamRecord, len(names))
	for i, name := range names {
		wins := 100 - 5*i
		out[i] = standings.TeamRecord{
			TeamID:    110 + i,
			Location:  name,
			Wins:      wins,
			Losses:    162 - wins,
			GamesBack: float64(5 * i),
			LastTen:   "6-4",
		}
	}
	out[2].GamesBack = 10.5
	return out
}

func testSnapshot() standings.Snapshot {
	snap := standings.NewSnapshot()
	snap[standings.AL][standings.East] = alEast()
	return snap
}

func TestFileName(t *testing.T) {
	tests := []struct {
		conf standings.Conference
		div  standings.Division
		want string
	}{
		{standings.AL, standings.East, "standings-AL-E.jpg"},
		{standings.NL, standings.Central, "standings-NL-C.jpg"},
		{standings.NL, standings.West, "standings-NL-W.jpg"},
	}
	for _, tt := range tests {
		if got := FileName(tt.conf, tt.div); got != tt.want {
			t.Errorf("FileName(%s, %s) = %q, want %q", tt.conf, tt.div, got, tt.want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title(standings.AL, standings.East); got != "AL EAST" {
		t.Errorf("Title = %q, want AL EAST", got)
	}
	if got := Title(standings.NL, standings.Central); got != "NL CENTRAL" {
		t.Errorf("Title = %q, want NL CENTRAL", got)
	}
}

func TestRender(t *testing.T) {
	c := newTestCompositor(t)

	img, err := c.Render(context.Background(), testSnapshot(), standings.AL, standings.East)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Format != "jpg" {
		t.Errorf("Format = %q", img.Format)
	}
	if img.FileName() != "standings-AL-E.jpg" {
		t.Errorf("FileName = %q", img.FileName())
	}
	if !img.Expires.IsZero() {
		t.Error("Expires should be left for the caller")
	}

	decoded, err := imaging.Decode(bytes.NewReader(img.Data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 1920 || b.Dy() != 1080 {
		t.Errorf("size = %dx%d, want 1920x1080", b.Dx(), b.Dy())
	}

	// Lossy, so compare with a tolerance.
	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background gap", 925, 600, Background},
		{"empty half-game box", 1560, 355, BoxColor},
		{"left frame", 5, 540, FrameColor},
	}
	for _, ck := range checks {
		if got := decoded.At(ck.x, ck.y); !near(got, ck.want, 24) {
			t.Errorf("%s at (%d,%d) = %v, want ~%v", ck.name, ck.x, ck.y, got, ck.want)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	c := newTestCompositor(t)
	a, err := c.Render(context.Background(), testSnapshot(), standings.AL, standings.East)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Render(context.Background(), testSnapshot(), standings.AL, standings.East)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Error("same input produced different bytes")
	}
}

func TestRender_Rejects(t *testing.T) {
	short := testSnapshot()
	short[standings.AL][standings.East] = alEast()[:4]

	tests := []struct {
		name string
		snap standings.Snapshot
		conf standings.Conference
		div  standings.Division
		code errors.Code
	}{
		{"bad division", testSnapshot(), standings.AL, "X", errors.ErrCodeInvalidDivision},
		{"bad conference", testSnapshot(), "XL", standings.East, errors.ErrCodeInvalidConference},
		{"four teams", short, standings.AL, standings.East, errors.ErrCodeIncompleteData},
		{"empty division", testSnapshot(), standings.NL, standings.West, errors.ErrCodeIncompleteData},
		{"nil snapshot", nil, standings.AL, standings.East, errors.ErrCodeIncompleteData},
	}

	c := newTestCompositor(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := c.Render(context.Background(), tt.snap, tt.conf, tt.div)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
			if img != nil {
				t.Error("no image should be produced")
			}
		})
	}
}

func TestDraw_Layout(t *testing.T) {
	c := newTestCompositor(t)
	img := c.draw(alEast(), "AL EAST")

	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background", 925, 600, Background},
		{"background below last row", 960, 1050, Background},
		{"team box corner", 51, 291, BoxColor},
		{"half-game box of leader", 1560, 355, BoxColor},
		{"last ten box bottom", 1855, 1039, BoxColor},
		{"top frame", 960, 5, FrameColor},
		{"right frame", 1915, 540, FrameColor},
		{"bottom frame", 960, 1075, FrameColor},
		{"left frame", 5, 540, FrameColor},
	}
	for _, ck := range checks {
		if got := img.RGBAAt(ck.x, ck.y); got != ck.want {
			t.Errorf("%s at (%d,%d) = %v, want %v", ck.name, ck.x, ck.y, got, ck.want)
		}
	}

	if !hasColor(img, image.Rect(0, 20, Width, titleBaseline), TextColor) {
		t.Error("title band has no text")
	}
	if !hasColor(img, image.Rect(int(winsCol.x), 150, int(winsCol.x+winsCol.width), labelBaseline), TextColor) {
		t.Error("W label missing")
	}
}

func TestDraw_RowOrderFollowsInput(t *testing.T) {
	c := newTestCompositor(t)
	base := alEast()

	swapped := alEast()
	swapped[1], swapped[3] = swapped[3], swapped[1]

	a := c.draw(base, "AL EAST")
	b := c.draw(swapped, "AL EAST")

	row := func(i int) image.Rectangle {
		top := int(rowY(i))
		return image.Rect(0, top, Width, top+boxHeight)
	}
	if !sameRegion(a, b, row(0)) {
		t.Error("row 0 changed although its team did not")
	}
	if !sameRegion(a, b, row(2)) {
		t.Error("row 2 changed although its team did not")
	}
	if sameRegion(a, b, row(1)) {
		t.Error("row 1 should show a different team")
	}
	if sameRegion(a, b, row(3)) {
		t.Error("row 3 should show a different team")
	}
}

func TestDraw_HalfGameCell(t *testing.T) {
	c := newTestCompositor(t)
	img := c.draw(alEast(), "AL EAST")

	cell := func(i int) image.Rectangle {
		top := int(rowY(i))
		return image.Rect(int(halfGameCol.x), top, int(halfGameCol.x+halfGameCol.width), top+boxHeight)
	}
	if hasColor(img, cell(1), TextColor) {
		t.Error("whole games back should leave the half-game cell empty")
	}
	if !hasColor(img, cell(2), TextColor) {
		t.Error("10.5 games back should draw the half-game glyph")
	}
}

func TestFillRect_MatchesPathFill(t *testing.T) {
	r := image.Rect(10, 20, 130, 95)

	direct := image.NewRGBA(image.Rect(0, 0, 160, 120))
	fillRect(direct, r, BoxColor)

	path := image.NewRGBA(image.Rect(0, 0, 160, 120))
	dc := gg.NewContextForRGBA(path)
	dc.SetColor(BoxColor)
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Fill()

	if !bytes.Equal(direct.Pix, path.Pix) {
		t.Error("direct fill and path fill differ")
	}
}

func TestFillRect_Clips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	fillRect(img, image.Rect(-5, -5, 5, 5), Background)
	fillRect(img, image.Rect(20, 20, 30, 30), TextColor)

	if img.RGBAAt(4, 4) != Background {
		t.Error("clipped area not filled")
	}
	if img.RGBAAt(5, 5) != (color.RGBA{}) {
		t.Error("fill leaked outside rectangle")
	}
}

type recordingRenderHooks struct {
	observability.NoopRenderHooks
	mu    sync.Mutex
	sizes []int
	errs  []error
}

func (h *recordingRenderHooks) OnRenderComplete(_ context.Context, _, _ string, size int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sizes = append(h.sizes, size)
	h.errs = append(h.errs, err)
}

func TestRender_Hooks(t *testing.T) {
	hooks := &recordingRenderHooks{}
	observability.SetRenderHooks(hooks)
	defer observability.Reset()

	c := newTestCompositor(t)
	c.Render(context.Background(), testSnapshot(), standings.AL, standings.East)
	c.Render(context.Background(), testSnapshot(), standings.AL, "X")

	if len(hooks.sizes) != 2 {
		t.Fatalf("hook calls = %d, want 2", len(hooks.sizes))
	}
	if hooks.sizes[0] == 0 || hooks.errs[0] != nil {
		t.Errorf("success call = %d, %v", hooks.sizes[0], hooks.errs[0])
	}
	if hooks.sizes[1] != 0 || hooks.errs[1] == nil {
		t.Errorf("failure call = %d, %v", hooks.sizes[1], hooks.errs[1])
	}
}

func near(got color.Color, want color.RGBA, tol int) bool {
	r, g, b, _ := got.RGBA()
	diff := func(a uint32, b uint8) bool {
		d := int(a>>8) - int(b)
		return d >= -tol && d <= tol
	}
	return diff(r, want.R) && diff(g, want.G) && diff(b, want.B)
}

func hasColor(img *image.RGBA, r image.Rectangle, c color.RGBA) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				return true
			}
		}
	}
	return false
}

func sameRegion(a, b *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) {
				return false
			}
		}
	}
	return true
}
