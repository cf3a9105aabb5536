package json

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonSchemaHandler_ReadSchemaRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lead.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"Object": "Lead", "Field": "Email", "Length": 80, "Label": null},
  {"object": "Lead", "field": "Phone"}
]`), 0o644))

	h := &JsonSchemaHandler{}
	rows, err := h.ReadSchemaRows("lead", path)
	require.NoError(t, err)

	assert.Equal(t, "json", rows.Type)
	assert.Equal(t, "lead", rows.SourceNameSimple)
	require.Len(t, rows.Rows, 2)
	assert.Equal(t, map[string]string{"object": "Lead", "field": "Email", "length": "80"}, rows.Rows[0])
	assert.Equal(t, "Phone", rows.Rows[1]["field"])
}

func TestJsonSchemaHandler_EmptyAndInvalid(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o644))
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"object": "lead"}`), 0o644))

	h := &JsonSchemaHandler{}
	rows, err := h.ReadSchemaRows("empty", empty)
	require.NoError(t, err)
	assert.Nil(t, rows.Rows)

	_, err = h.ReadSchemaRows("broken", broken)
	assert.Error(t, err)
}
