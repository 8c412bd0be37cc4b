package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// ShortlistSheet is the name of the overview sheet written by ExportExcel.
const ShortlistSheet = "Shortlist"

var shortlistHeader = []interface{}{
	"Design", "Labels", "Outer W", "Outer H", "Outer D",
	"Boards", "Cubes", "Price", "Internal volume", "Outer volume", "Dead space",
	"Rank price", "Rank volume", "Rank boards", "Rank total",
}

// ExportExcel writes a workbook with a Shortlist sheet of metrics and ranks
// and one bill-of-materials sheet per shortlisted design.
func ExportExcel(path string, result model.CrateResult, catalog model.Catalog, opts ...Option) error {
	if result.Shortlist.Len() == 0 {
		return fmt.Errorf("no shortlisted designs to export")
	}
	o := newOptions(opts)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ShortlistSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := f.SetCellValue(ShortlistSheet, "A1", "Report "+o.reportID); err != nil {
		return err
	}
	if err := f.SetSheetRow(ShortlistSheet, "A2", &shortlistHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetRowStyle(ShortlistSheet, 2, 2, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, e := range result.Shortlist.Entries {
		d := e.Design
		row := []interface{}{
			d.ID, strings.Join(e.Labels, ", "),
			d.OuterDims.Width, d.OuterDims.Height, d.OuterDims.Depth,
			d.BoardCount, d.CubeCount, d.TotalPrice,
			d.InternalVolume, d.OuterVolume, d.DeadSpace(),
			d.RankPrice, d.RankVolume, d.RankBoards, d.RankTotal,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ShortlistSheet, cell, &row); err != nil {
			return fmt.Errorf("write %s: %w", d.ID, err)
		}

		if err := writeBOMSheet(f, bomSheetName(d.ID), model.BillOfMaterials(d, catalog), bold); err != nil {
			return fmt.Errorf("write bom %s: %w", d.ID, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx %s: %w", path, err)
	}
	return nil
}

// bomSheetName keeps within Excel's 31 character sheet name limit.
func bomSheetName(id string) string {
	name := "BOM " + id
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

func writeBOMSheet(f *excelize.File, sheet string, bom model.BOM, bold int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Type", "Part", "Qty", "Unit price", "Subtotal"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}

	for i, line := range bom.Lines {
		row := []interface{}{line.TypeKey, line.Name, line.Count, line.UnitPrice, line.Subtotal}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	totalRow := len(bom.Lines) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), "Total"); err != nil {
		return err
	}
	return f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), bom.Total)
}
