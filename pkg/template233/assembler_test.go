package template233

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
)

func TestDedupeObjectNames(t *testing.T) {
	got := DedupeObjectNames([]string{"Lead", "lead", "Contact", " ", "LEAD"})
	if diff := cmp.Diff([]string{"lead", "contact"}, got); diff != "" {
		t.Errorf("DedupeObjectNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseObjectNames(t *testing.T) {
	assert.Equal(t, []string{"lead"}, ParseObjectNames(""))
	assert.Equal(t, []string{"lead"}, ParseObjectNames(" , "))
	assert.Equal(t, []string{"account", "contact", "lead"}, ParseObjectNames("Account, Contact Lead,account"))
}

func TestAssemble(t *testing.T) {
	store := NewObjectSettingsStore()
	require.NoError(t, store.SetCount("lead", "5"))

	global := GlobalAnswers{
		TemplateFileName: "lead_data_template.json",
		OutputFormat:     []dto.OutputFormat{dto.OutputCSV},
		Language:         "en",
		Count:            1,
	}
	cfg := Assemble(global, store, []string{"account", "lead"})

	require.Len(t, cfg.SObjects, 2)
	assert.Equal(t, "account", cfg.SObjects[0].Name)
	assert.Equal(t, "lead", cfg.SObjects[1].Name)
	assert.NotNil(t, cfg.NamespaceToExclude)

	data, err := json.Marshal(cfg.SObjects)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"account": {}}, {"lead": {"count": 5}}]`, string(data))

	data, err = json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"namespaceToExclude":[]`)
}

func TestAssemble_CopiesSettings(t *testing.T) {
	store := NewObjectSettingsStore()
	require.NoError(t, store.SetCount("lead", "5"))

	cfg := Assemble(GlobalAnswers{}, store, []string{"lead"})
	require.NoError(t, store.SetCount("lead", "9"))

	assert.Equal(t, 5, *cfg.SObjects[0].Settings.Count, "文档不受之后的修改影响")
}

func TestAssemble_OverriddenObjectNotListed(t *testing.T) {
	store := NewObjectSettingsStore()
	store.SetLanguage("contact", "fr")

	cfg := Assemble(GlobalAnswers{}, store, []string{"lead"})
	require.Len(t, cfg.SObjects, 1)
	assert.Equal(t, "lead", cfg.SObjects[0].Name)
}
