package importer

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

var header = []any{"region", "weight", "weight_unit", "length", "dimension_unit", "method", "angle"}

func TestImport(t *testing.T) {
	buf := workbook(t, [][]any{
		header,
		{"europe", 1000, "kg", 9.2, "m", "direct"},
		{"North_America ", 2000, "lbs", 22, "ft", "indirect", 45},
		{"europe", "heavy", "kg", 2, "m", "direct"},
		{"europe", 0, "kg", 2, "m", "direct"},
		{"australia", "1000,5", "kg", 4, "m", "indirect", 60},
	})

	res, err := Import(buf)
	require.NoError(t, err)

	require.Equal(t, 3, res.Count)
	assert.Equal(t, 2, res.Results[0].Row)
	assert.Equal(t, 1300.0, res.Results[0].TotalRequiredWLL)
	assert.Equal(t, 1200.0, res.Results[1].TotalRequiredWLL)
	assert.Equal(t, 6, res.Results[2].Row)
	assert.Equal(t, 0.87, res.Results[2].AngleEfficiencyFactor)

	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 4, res.Skipped[0].Row)
	assert.Contains(t, res.Skipped[0].Reason, "weight")
	assert.Equal(t, 5, res.Skipped[1].Row)
	assert.Contains(t, res.Skipped[1].Reason, "Cargo weight must be greater than 0")
}

func TestImport_InfiniteValuesSkipped(t *testing.T) {
	buf := workbook(t, [][]any{
		header,
		{"europe", 1000, "kg", "inf", "m", "direct"},
		{"europe", "Inf", "kg", 2, "m", "direct"},
	})

	res, err := Import(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 2, res.Skipped[0].Row)
	assert.Contains(t, res.Skipped[0].Reason, "Cargo length must be a finite number")
	assert.Equal(t, 3, res.Skipped[1].Row)
	assert.Contains(t, res.Skipped[1].Reason, "Cargo weight must be a finite number")
}

func TestImport_EmptySheet(t *testing.T) {
	_, err := Import(workbook(t, [][]any{header}))
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestImport_NotAWorkbook(t *testing.T) {
	_, err := Import(strings.NewReader("region,weight\n"))
	assert.Error(t, err)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank(nil))
	assert.True(t, isBlank([]string{"", "  "}))
	assert.False(t, isBlank([]string{"", "europe"}))
}

func TestParseRow_ShortRow(t *testing.T) {
	_, err := parseRow([]string{"europe", "100"})
	assert.Error(t, err)
}

func TestHandler_Securing(t *testing.T) {
	xlsx := workbook(t, [][]any{header, {"europe", 1000, "kg", 5, "m", "direct"}})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "cargo.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Securing(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)

	rec = httptest.NewRecorder()
	(&Handler{}).Securing(rec, httptest.NewRequest(http.MethodPost, "/import", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
