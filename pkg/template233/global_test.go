package template233

import (
	"bytes"
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
	"github.com/neko233-com/template233-go/pkg/template233/prompt"
)

func TestGlobalCollector_Defaults(t *testing.T) {
	layout := newTestLayout(t)
	script := prompt.NewScript("", "", "csv", "", "", "")
	collector := NewGlobalCollector(script, prompt.NewPrinter(&bytes.Buffer{}, false), layout, GlobalOptions{})

	answers, objects, err := collector.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, GlobalAnswers{
		TemplateFileName:   "account_creation_data_template.json",
		NamespaceToExclude: []string{},
		OutputFormat:       []dto.OutputFormat{dto.OutputCSV},
		Language:           "en",
		Count:              1,
	}, answers)
	assert.Equal(t, []string{"lead"}, objects)
}

func TestGlobalCollector_Answers(t *testing.T) {
	layout := newTestLayout(t)
	var out bytes.Buffer
	script := prompt.NewScript(
		"lead",
		"ns1, NS2",
		"xml",
		"JSON, di",
		"fr",
		"0",
		"7",
		"Lead, lead, Contact",
	)
	collector := NewGlobalCollector(script, prompt.NewPrinter(&out, false), layout, GlobalOptions{Languages: []string{"en", "fr"}})

	answers, objects, err := collector.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "lead_data_template.json", answers.TemplateFileName)
	assert.Equal(t, []string{"ns1", "ns2"}, answers.NamespaceToExclude)
	assert.Equal(t, []dto.OutputFormat{dto.OutputJSON, dto.OutputDI}, answers.OutputFormat)
	assert.Equal(t, "fr", answers.Language)
	assert.Equal(t, 7, answers.Count)
	assert.Equal(t, []string{"lead", "contact"}, objects)

	assert.Contains(t, out.String(), "Invalid input. Please enter only CSV, JSON, or DI.")
	assert.Contains(t, out.String(), "Invalid input. Please enter a valid number")
}

func TestGlobalCollector_NonNumericCountUsesDefault(t *testing.T) {
	layout := newTestLayout(t)
	script := prompt.NewScript("lead", "", "csv", "", "many", "")
	collector := NewGlobalCollector(script, prompt.NewPrinter(&bytes.Buffer{}, false), layout, GlobalOptions{DefaultCount: 3})

	answers, _, err := collector.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, answers.Count)
}

func TestGlobalCollector_Interrupted(t *testing.T) {
	layout := newTestLayout(t)
	collector := NewGlobalCollector(prompt.NewScript("lead", ""), prompt.NewPrinter(&bytes.Buffer{}, false), layout, GlobalOptions{})

	_, _, err := collector.Collect(context.Background())
	assert.True(t, errors.Is(err, prompt.ErrInterrupted))
}
