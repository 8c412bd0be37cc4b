package export

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/CrateCraft/internal/model"
)

func TestExportExcel_WritesShortlistAndBOMSheets(t *testing.T) {
	result, catalog := buildTestResult(t)
	path := filepath.Join(t.TempDir(), "crates.xlsx")

	require.NoError(t, ExportExcel(path, result, catalog, WithReportID("ABCD1234")))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1+result.Shortlist.Len())
	assert.Equal(t, ShortlistSheet, sheets[0])

	rows, err := f.GetRows(ShortlistSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2+result.Shortlist.Len())
	assert.Equal(t, "Report ABCD1234", rows[0][0])
	assert.Equal(t, "Design", rows[1][0])
	assert.Equal(t, result.Shortlist.Entries[0].Design.ID, rows[2][0])

	first := result.Shortlist.Entries[0].Design
	bomRows, err := f.GetRows(bomSheetName(first.ID))
	require.NoError(t, err)
	bom := model.BillOfMaterials(first, catalog)
	require.Len(t, bomRows, len(bom.Lines)+2)

	last := bomRows[len(bomRows)-1]
	require.Len(t, last, 5)
	total, err := strconv.ParseFloat(last[4], 64)
	require.NoError(t, err)
	assert.InDelta(t, bom.Total, total, 1e-6)
}

func TestExportExcel_EmptyShortlist(t *testing.T) {
	err := ExportExcel(filepath.Join(t.TempDir(), "x.xlsx"), model.CrateResult{}, model.DefaultCatalog())
	assert.Error(t, err)
}

func TestBOMSheetName_Truncates(t *testing.T) {
	assert.Equal(t, "BOM candidate-3", bomSheetName("candidate-3"))
	assert.Len(t, bomSheetName("candidate-0123456789012345678901234"), 31)
}
