package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 10.0
	netAreaWidth = 170.0
)

// ExportPDF writes a report with one page per shortlisted design (metrics,
// unfolded face drawing and bill of materials) followed by a summary page
// comparing the shortlist.
func ExportPDF(path string, result model.CrateResult, catalog model.Catalog, opts ...Option) error {
	if result.Shortlist.Len() == 0 {
		return fmt.Errorf("no shortlisted designs to export")
	}
	o := newOptions(opts)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle("Crate shortlist "+o.reportID, false)

	for i, entry := range result.Shortlist.Entries {
		pdf.AddPage()
		skipped := renderDesignPage(pdf, entry, catalog, i+1, o.reportID)
		logSkipped(o.logger, entry.Design.ID, skipped)
	}

	pdf.AddPage()
	renderShortlistSummary(pdf, result, o.reportID)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// renderDesignPage draws a single shortlisted design and returns the faces
// that could not be drawn.
func renderDesignPage(pdf *fpdf.Fpdf, entry model.ShortlistEntry, catalog model.Catalog, num int, reportID string) []string {
	d := entry.Design

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Design %d: %s", num, designTitle(entry))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")
	drawReportID(pdf, reportID)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Outer %.1f x %.1f x %.1f | Boards: %d | Cubes: %d | Price: %.2f | Dead space: %.4f",
		d.OuterDims.Width, d.OuterDims.Height, d.OuterDims.Depth,
		d.BoardCount, d.CubeCount, d.TotalPrice, d.DeadSpace())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	skipped := drawNet(pdf, d, catalog, marginLeft, drawAreaTop, netAreaWidth, pageHeight-drawAreaTop-marginBottom)
	drawBOM(pdf, model.BillOfMaterials(d, catalog), marginLeft+netAreaWidth+8, drawAreaTop)

	if len(skipped) > 0 {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(200, 0, 0)
		y := pageHeight - marginBottom - 4*float64(len(skipped))
		for _, s := range skipped {
			pdf.SetXY(marginLeft, y)
			pdf.CellFormat(netAreaWidth, 4, "Skipped "+s, "", 0, "L", false, 0, "")
			y += 4
		}
		pdf.SetTextColor(0, 0, 0)
	}
	return skipped
}

// drawNet renders the unfolded crate into the given box, boards coloured by
// their board type. Net y grows upwards, page y downwards.
func drawNet(pdf *fpdf.Fpdf, d model.CrateDesign, catalog model.Catalog, x, y, w, h float64) []string {
	panels, skipped := unfold(d)
	nw, nh := netBounds(d)
	if nw <= 0 || nh <= 0 {
		return skipped
	}
	scale := math.Min(w/nw, h/nh)
	toPage := func(nx, ny float64) (float64, float64) {
		return x + nx*scale, y + (nh-ny)*scale
	}

	for _, p := range panels {
		px, py := toPage(p.X, p.Y+p.H)
		pdf.SetDrawColor(100, 100, 100)
		pdf.SetFillColor(240, 235, 225)
		pdf.SetLineWidth(0.4)
		pdf.Rect(px, py, p.W*scale, p.H*scale, "FD")

		for _, r := range p.rects() {
			col := fallbackColor
			if bt, ok := catalog.TypeByKey(r.TypeKey); ok {
				col = parseHexColor(bt.DefaultColor)
			}
			rx, ry := toPage(r.X, r.Y+r.H)
			pdf.SetFillColor(col.R, col.G, col.B)
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.2)
			pdf.Rect(rx, ry, r.W*scale, r.H*scale, "FD")
		}

		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetTextColor(0, 0, 0)
		label := strings.ToUpper(string(p.Face))
		lw := pdf.GetStringWidth(label)
		pdf.SetXY(px+(p.W*scale-lw)/2, py+p.H*scale/2-2)
		pdf.CellFormat(lw, 4, label, "", 0, "C", false, 0, "")
	}
	return skipped
}

// drawBOM renders the part list with a grand total.
func drawBOM(pdf *fpdf.Fpdf, bom model.BOM, x, y float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(x, y)
	pdf.CellFormat(80, 7, "Bill of Materials", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{34, 14, 20, 20}
	headers := []string{"Part", "Qty", "Unit", "Subtotal"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := x
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, line := range bom.Lines {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		row := []string{
			line.Name,
			fmt.Sprintf("%d", line.Count),
			fmt.Sprintf("%.2f", line.UnitPrice),
			fmt.Sprintf("%.2f", line.Subtotal),
		}
		xPos = x
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(x, y)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], 6, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 6, fmt.Sprintf("%.2f", bom.Total), "1", 0, "C", false, 0, "")
}

// renderShortlistSummary compares every shortlisted design side by side.
func renderShortlistSummary(pdf *fpdf.Fpdf, result model.CrateResult, reportID string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Crate Shortlist Summary", "", 0, "L", false, 0, "")
	drawReportID(pdf, reportID)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, y)
	cargo := fmt.Sprintf("Cargo %.1f x %.1f x %.1f | %d designs evaluated | %d shortlisted",
		result.Cargo.Width, result.Cargo.Height, result.Cargo.Depth, len(result.Designs), result.Shortlist.Len())
	pdf.CellFormat(200, 6, cargo, "", 0, "L", false, 0, "")
	y += 10

	colWidths := []float64{30, 45, 50, 20, 25, 30, 35, 30}
	headers := []string{"Design", "Labels", "Outer dims", "Boards", "Price", "Internal vol.", "Dead space", "Ranks P/V/B"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, e := range result.Shortlist.Entries {
		d := e.Design
		row := []string{
			d.ID,
			strings.Join(e.Labels, ", "),
			fmt.Sprintf("%.1f x %.1f x %.1f", d.OuterDims.Width, d.OuterDims.Height, d.OuterDims.Depth),
			fmt.Sprintf("%d", d.BoardCount),
			fmt.Sprintf("%.2f", d.TotalPrice),
			fmt.Sprintf("%.4f", d.InternalVolume),
			fmt.Sprintf("%.4f", d.DeadSpace()),
			fmt.Sprintf("%d/%d/%d", d.RankPrice, d.RankVolume, d.RankBoards),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(result.Warnings) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Warnings", "", 0, "L", false, 0, "")
		y += 8
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, w := range result.Warnings {
			if y > pageHeight-marginBottom-6 {
				break
			}
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(250, 5, "- "+w, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CrateCraft - Crate Design Optimizer", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func drawReportID(pdf *fpdf.Fpdf, reportID string) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(pageWidth-marginRight-50, marginTop)
	pdf.CellFormat(50, 5, "Report "+reportID, "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
