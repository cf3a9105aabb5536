package template233

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
	"github.com/neko233-com/template233-go/pkg/template233/fieldexpr"
)

func TestStore_EnsureIsIdempotent(t *testing.T) {
	store := NewObjectSettingsStore()
	first := store.Ensure("Lead")
	require.NoError(t, store.SetCount("lead", "5"))

	again := store.Ensure(" LEAD ")
	assert.Same(t, first, again)
	require.NotNil(t, again.Count)
	assert.Equal(t, 5, *again.Count)
	assert.Equal(t, []string{"lead"}, store.Names())
}

func TestStore_SetCount(t *testing.T) {
	store := NewObjectSettingsStore()
	store.Ensure("lead")

	require.NoError(t, store.SetCount("lead", ""))
	settings, _ := store.Get("lead")
	assert.Nil(t, settings.Count, "空输入不修改记录数")

	for _, raw := range []string{"abc", "0", "-3", "1.5"} {
		err := store.SetCount("lead", raw)
		assert.True(t, errors.Is(err, ErrInvalidCount), "输入 %q 应返回 ErrInvalidCount", raw)
	}
	assert.Nil(t, settings.Count)

	require.NoError(t, store.SetCount("lead", " 12 "))
	assert.Equal(t, 12, *settings.Count)
}

func TestStore_FieldsToExcludeNormalized(t *testing.T) {
	store := NewObjectSettingsStore()
	store.SetFieldsToExclude("lead", []string{"Fax", "fax", " Website ", ""})

	settings, ok := store.Get("lead")
	require.True(t, ok)
	assert.Equal(t, []string{"fax", "website"}, settings.FieldsToExclude)
}

func TestStore_DetectConflicts(t *testing.T) {
	store := NewObjectSettingsStore()
	store.SetFieldsToExclude("lead", []string{"fax", "website"})
	store.SetFieldsToConsider("lead", fieldexpr.Parse("Fax: [12345], Phone"))

	assert.Equal(t, []string{"fax"}, store.DetectConflicts("lead"))
	assert.Empty(t, store.DetectConflicts("contact"))

	store.SetFieldsToConsider("lead", fieldexpr.Parse("phone, email"))
	assert.Empty(t, store.DetectConflicts("lead"))
}

func TestStore_IsDeadEnd(t *testing.T) {
	withFields := fieldexpr.Parse("phone")

	tests := []struct {
		name     string
		consider *dto.FieldConsiderMap
		pick     *bool
		want     bool
	}{
		{"nothing set", nil, nil, false},
		{"pick true", nil, boolPtr(true), false},
		{"pick false", nil, boolPtr(false), true},
		{"pick false with fields", withFields, boolPtr(false), false},
		{"fields only", withFields, nil, false},
		{"empty map pick false", dto.NewFieldConsiderMap(), boolPtr(false), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewObjectSettingsStore()
			store.Ensure("lead")
			if tt.consider != nil {
				store.SetFieldsToConsider("lead", tt.consider)
			}
			if tt.pick != nil {
				store.SetPickLeftFields("lead", *tt.pick)
			}
			assert.Equal(t, tt.want, store.IsDeadEnd("lead"))
		})
	}

	assert.False(t, NewObjectSettingsStore().IsDeadEnd("missing"))
}

func TestStore_Listeners(t *testing.T) {
	store := NewObjectSettingsStore()
	var changed []string
	store.AddListener(SettingsChangeFunc(func(object string, settings *dto.ObjectSettings) {
		changed = append(changed, object)
	}))

	store.Ensure("lead")
	assert.Empty(t, changed, "Ensure 不触发监听器")

	store.SetLanguage("Lead", "fr")
	require.NoError(t, store.SetCount("contact", "2"))
	assert.Error(t, store.SetCount("contact", "x"))

	assert.Equal(t, []string{"lead", "contact"}, changed)
	assert.Equal(t, []string{"lead", "contact"}, store.Names())
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(n int) *int {
	return &n
}
