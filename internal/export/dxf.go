package export

import (
	"fmt"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// DXF layer names.
const (
	LayerBoards = "BOARDS"
	LayerFaces  = "FACES"
	LayerLabels = "LABELS"
)

const dxfTextHeight = 1.2

// ExportDXF writes the unfolded net of one design: face outlines on FACES,
// a closed rectangle per board on BOARDS and type keys on LABELS. Faces
// without boards are left out and noted on LABELS.
func ExportDXF(path string, design model.CrateDesign, opts ...Option) error {
	o := newOptions(opts)
	panels, skipped := unfold(design)
	if len(panels) == 0 {
		return fmt.Errorf("design %s has no drawable faces", design.ID)
	}
	logSkipped(o.logger, design.ID, skipped)

	d := dxf.NewDrawing()
	for _, l := range []struct {
		name string
		col  color.ColorNumber
	}{
		{LayerFaces, color.White},
		{LayerBoards, color.Yellow},
		{LayerLabels, color.Cyan},
	} {
		if _, err := d.AddLayer(l.name, l.col, table.LT_CONTINUOUS, false); err != nil {
			return fmt.Errorf("add layer %s: %w", l.name, err)
		}
	}

	for _, p := range panels {
		if err := d.ChangeLayer(LayerFaces); err != nil {
			return err
		}
		if err := dxfRect(d, p.X, p.Y, p.W, p.H); err != nil {
			return err
		}

		for _, r := range p.rects() {
			if err := d.ChangeLayer(LayerBoards); err != nil {
				return err
			}
			if err := dxfRect(d, r.X, r.Y, r.W, r.H); err != nil {
				return err
			}
			if err := d.ChangeLayer(LayerLabels); err != nil {
				return err
			}
			if _, err := d.Text(r.TypeKey, r.X+0.5, r.Y+0.5, 0, dxfTextHeight); err != nil {
				return err
			}
		}

		if _, err := d.Text(strings.ToUpper(string(p.Face)), p.X, p.Y+p.H+0.5, 0, dxfTextHeight*1.5); err != nil {
			return err
		}
	}

	_, netH := netBounds(design)
	if err := d.ChangeLayer(LayerLabels); err != nil {
		return err
	}
	if _, err := d.Text(fmt.Sprintf("%s report %s", design.ID, o.reportID), 0, netH+netSpacing, 0, dxfTextHeight*2); err != nil {
		return err
	}
	for i, s := range skipped {
		if _, err := d.Text("skipped "+s, 0, -netSpacing-float64(i)*2*dxfTextHeight, 0, dxfTextHeight); err != nil {
			return err
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("write dxf %s: %w", path, err)
	}
	return nil
}

// dxfRect draws a closed rectangle on the current layer.
func dxfRect(d *drawing.Drawing, x, y, w, h float64) error {
	_, err := d.LwPolyline(true,
		[]float64{x, y},
		[]float64{x + w, y},
		[]float64{x + w, y + h},
		[]float64{x, y + h},
	)
	return err
}
