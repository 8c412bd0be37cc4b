package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/CrateCraft/internal/model"
)

func TestExportPDF_CreatesFile(t *testing.T) {
	result, catalog := buildTestResult(t)
	path := filepath.Join(t.TempDir(), "report.pdf")

	err := ExportPDF(path, result, catalog, WithReportID("TEST0001"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Greater(t, len(data), 1000, "PDF seems too small")
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportPDF_EmptyShortlist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	result := model.CrateResult{Shortlist: model.Shortlist{Entries: []model.ShortlistEntry{}}}

	err := ExportPDF(path, result, model.DefaultCatalog())

	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be written")
}

func TestExportPDF_MalformedFaceIsSkipped(t *testing.T) {
	result, catalog := buildTestResult(t)
	entry := result.Shortlist.Entries[0]
	faces := map[model.Face]model.FaceLayout{}
	for f, l := range entry.Design.Faces {
		if f != model.FaceBack {
			faces[f] = l
		}
	}
	entry.Design.Faces = faces
	result.Shortlist.Entries = []model.ShortlistEntry{entry}
	path := filepath.Join(t.TempDir(), "partial.pdf")

	require.NoError(t, ExportPDF(path, result, catalog))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestExportPDF_InvalidPath(t *testing.T) {
	result, catalog := buildTestResult(t)

	err := ExportPDF(filepath.Join(t.TempDir(), "missing", "dir", "report.pdf"), result, catalog)

	assert.Error(t, err)
}

func TestExportLabels_CreatesFile(t *testing.T) {
	result, _ := buildTestResult(t)
	path := filepath.Join(t.TempDir(), "labels.pdf")

	require.NoError(t, ExportLabels(path, result))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestExportLabels_EmptyShortlist(t *testing.T) {
	err := ExportLabels(filepath.Join(t.TempDir(), "labels.pdf"), model.CrateResult{})
	assert.Error(t, err)
}
