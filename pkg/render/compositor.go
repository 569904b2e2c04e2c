package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"

	"github.com/matzehuels/standings/pkg/errors"
	"github.com/matzehuels/standings/pkg/fonts"
	"github.com/matzehuels/standings/pkg/observability"
	"github.com/matzehuels/standings/pkg/standings"
)

// FormatJPEG is the only output format.
const FormatJPEG = "jpg"

// Image is an encoded standings image. It is not modified after Render
// returns it.
type Image struct {
	Conference standings.Conference
	Division   standings.Division
	Data       []byte
	Format     string

	// Expires is when the data behind the image is due for refresh. Zero
	// when unknown; callers may ignore it.
	Expires time.Time
}

// FileName returns the conventional output name, e.g. "standings-AL-E.jpg".
func (img *Image) FileName() string {
	return FileName(img.Conference, img.Division)
}

// FileName returns "standings-{CONF}-{DIV}.jpg".
func FileName(conf standings.Conference, div standings.Division) string {
	return fmt.Sprintf("standings-%s-%s.%s", conf, div, FormatJPEG)
}

// Title returns the heading drawn at the top of the image, e.g. "AL EAST".
func Title(conf standings.Conference, div standings.Division) string {
	return string(conf) + " " + div.Name()
}

// Option configures a [Compositor].
type Option func(*Compositor)

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Compositor) {
		if l != nil {
			c.logger = l
		}
	}
}

// Compositor renders division standings to JPEG.
type Compositor struct {
	font   *truetype.Font
	logger *log.Logger
}

// NewCompositor loads the embedded font and returns a Compositor.
func NewCompositor(opts ...Option) (*Compositor, error) {
	f, err := fonts.Bold()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
	}
	c := &Compositor{font: f, logger: log.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Render draws the standings of one division and encodes them as JPEG.
//
// Errors:
//   - INVALID_CONFERENCE or INVALID_DIVISION for an unknown selector
//   - INCOMPLETE_DATA if the division does not hold exactly five teams
//
// Nothing is drawn when the inputs are rejected.
func (c *Compositor) Render(ctx context.Context, snap standings.Snapshot, conf standings.Conference, div standings.Division) (img *Image, err error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, string(conf), string(div))
	defer func() {
		size := 0
		if img != nil {
			size = len(img.Data)
		}
		observability.Render().OnRenderComplete(ctx, string(conf), string(div), size, time.Since(start), err)
	}()

	teams, err := snap.Division(conf, div)
	if err != nil {
		if errors.IsBadInput(err) {
			c.logger.Error("render: bad selector", "conf", conf, "div", div, "err", err)
		} else {
			c.logger.Warn("render: no image available", "conf", conf, "div", div, "err", err)
		}
		return nil, err
	}

	raster := c.draw(teams, Title(conf, div))

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, raster, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", FileName(conf, div))
	}

	c.logger.Debug("render: done", "conf", conf, "div", div, "bytes", buf.Len(), "elapsed", time.Since(start))
	return &Image{
		Conference: conf,
		Division:   div,
		Data:       buf.Bytes(),
		Format:     FormatJPEG,
	}, nil
}

// draw lays out the full canvas. teams must hold exactly five records.
func (c *Compositor) draw(teams []standings.TeamRecord, title string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillRect(img, img.Rect, Background)

	dc := gg.NewContextForRGBA(img)

	// Title.
	dc.SetFontFace(fonts.Face(c.font, titleSize))
	dc.SetColor(TextColor)
	w, _ := dc.MeasureString(title)
	dc.DrawString(title, (Width-w)/2, titleBaseline)

	// Frame as one path; stopping half a stroke short of the start closes
	// the top-left corner without overdrawing it.
	dc.SetColor(FrameColor)
	dc.SetLineWidth(frameStroke)
	dc.MoveTo(0, 0)
	dc.LineTo(Width, 0)
	dc.LineTo(Width, Height)
	dc.LineTo(0, Height)
	dc.LineTo(0, frameStroke/2)
	dc.Stroke()

	// Column labels. GB spans the games-back and half-game boxes.
	dc.SetFontFace(fonts.Face(c.font, textSize))
	dc.SetColor(TextColor)
	drawCentered(dc, "W", winsCol, labelBaseline)
	drawCentered(dc, "L", lossesCol, labelBaseline)
	drawCentered(dc, "GB", column{gamesBackCol.x, gamesBackCol.width + halfGameCol.width}, labelBaseline)
	drawCentered(dc, "L10", lastTenCol, labelBaseline)

	// Boxes.
	dc.SetColor(BoxColor)
	for i := 0; i < rows; i++ {
		for _, col := range dataColumns {
			dc.DrawRectangle(col.x, rowY(i), col.width, boxHeight)
			dc.Fill()
		}
	}

	// Rows, in the order given.
	dc.SetColor(TextColor)
	for i, team := range teams[:rows] {
		y := rowY(i) + textBaselineInBox
		whole, half := standings.FormatGamesBack(team.GamesBack)

		dc.DrawString(team.Location, teamCol.x+teamInsetX, y)
		drawCentered(dc, strconv.Itoa(team.Wins), winsCol, y)
		drawCentered(dc, strconv.Itoa(team.Losses), lossesCol, y)
		drawCentered(dc, whole, gamesBackCol, y)
		drawCentered(dc, half, halfGameCol, y)
		drawCentered(dc, team.LastTen, lastTenCol, y)
	}

	return img
}

// drawCentered draws s horizontally centered in col with its baseline at y.
func drawCentered(dc *gg.Context, s string, col column, y float64) {
	if s == "" {
		return
	}
	w, _ := dc.MeasureString(s)
	dc.DrawString(s, col.x+(col.width-w)/2, y)
}
