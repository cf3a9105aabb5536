package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelSchemaHandler_ReadSchemaRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "account.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Object", "Field", "Type"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Account", " Name ", "string"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{"Account", "Website"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	h := &ExcelSchemaHandler{}
	rows, err := h.ReadSchemaRows("account", path)
	require.NoError(t, err)

	assert.Equal(t, "excel", rows.Type)
	assert.Equal(t, "xlsx", rows.Suffix)
	require.Len(t, rows.Rows, 2, "空行被跳过")
	assert.Equal(t, map[string]string{"object": "Account", "field": "Name", "type": "string"}, rows.Rows[0])
	assert.Equal(t, map[string]string{"object": "Account", "field": "Website"}, rows.Rows[1])
}

func TestExcelSchemaHandler_MissingFile(t *testing.T) {
	_, err := (&ExcelSchemaHandler{}).ReadSchemaRows("missing", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
