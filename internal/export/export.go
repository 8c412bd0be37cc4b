// Package export renders optimizer results to documents: PDF reports, QR
// labels, Excel workbooks, DXF drawings and HTML charts.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// Option configures an export call.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	reportID string
}

// WithLogger routes export diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithReportID stamps id instead of a freshly generated one.
func WithReportID(id string) Option {
	return func(o *options) { o.reportID = id }
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.reportID == "" {
		o.reportID = NewReportID()
	}
	return o
}

// NewReportID returns a short random id printed in every export header.
func NewReportID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// rgb is an 8-bit colour.
type rgb struct {
	R, G, B int
}

var fallbackColor = rgb{R: 210, G: 180, B: 140}

// parseHexColor reads "#RRGGBB"; anything else yields the fallback.
func parseHexColor(s string) rgb {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallbackColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackColor
	}
	return rgb{R: int(v >> 16 & 0xFF), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}
}

// netPanel is one face placed on the unfolded net, origin at its lower-left
// corner.
type netPanel struct {
	Face   model.Face
	X, Y   float64
	W, H   float64
	Layout model.FaceLayout
}

// netRect is a board footprint in net coordinates.
type netRect struct {
	TypeKey string
	X, Y    float64
	W, H    float64
}

const netSpacing = 4.0

// unfold lays the six faces out as a cross: left, front, right and back in
// one row, top above the front and bottom below it. Faces that are missing
// or have no boards are returned in skipped with a reason.
func unfold(d model.CrateDesign) (panels []netPanel, skipped []string) {
	w, h, dp := d.InternalDims.Width, d.InternalDims.Height, d.InternalDims.Depth

	rowY := dp + netSpacing
	places := []struct {
		face       model.Face
		x, y, pw, ph float64
	}{
		{model.FaceLeft, 0, rowY, dp, h},
		{model.FaceFront, dp + netSpacing, rowY, w, h},
		{model.FaceRight, dp + w + 2*netSpacing, rowY, dp, h},
		{model.FaceBack, 2*dp + w + 3*netSpacing, rowY, w, h},
		{model.FaceTop, dp + netSpacing, rowY + h + netSpacing, w, dp},
		{model.FaceBottom, dp + netSpacing, 0, w, dp},
	}

	for _, p := range places {
		layout, ok := d.Faces[p.face]
		if !ok || len(layout.Boards) == 0 {
			skipped = append(skipped, fmt.Sprintf("%s: face %s has no boards", d.ID, p.face))
			continue
		}
		panels = append(panels, netPanel{Face: p.face, X: p.x, Y: p.y, W: p.pw, H: p.ph, Layout: layout})
	}
	return panels, skipped
}

// rects converts the panel's board placements to footprints in net
// coordinates. A turned board spans Height along the face's first axis.
func (p netPanel) rects() []netRect {
	cx, cy := p.X+p.W/2, p.Y+p.H/2
	out := make([]netRect, 0, len(p.Layout.Boards))
	for _, b := range p.Layout.Boards {
		fw, fh := b.Width, b.Height
		if b.Rotated() {
			fw, fh = b.Height, b.Width
		}
		out = append(out, netRect{
			TypeKey: b.TypeKey,
			X:       cx + b.Position[0] - fw/2,
			Y:       cy + b.Position[1] - fh/2,
			W:       fw,
			H:       fh,
		})
	}
	return out
}

// netBounds returns the total extent of the unfolded net.
func netBounds(d model.CrateDesign) (w, h float64) {
	dims := d.InternalDims
	return 2*dims.Depth + 2*dims.Width + 3*netSpacing, 2*dims.Depth + dims.Height + 2*netSpacing
}

func logSkipped(l zerolog.Logger, design string, skipped []string) {
	for _, s := range skipped {
		l.Warn().Str("design", design).Msg(s)
	}
}

// designTitle is the heading used for a shortlisted design.
func designTitle(e model.ShortlistEntry) string {
	return fmt.Sprintf("%s (%s)", e.Design.ID, strings.Join(e.Labels, ", "))
}
