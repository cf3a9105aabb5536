package fieldexpr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
)

type entry struct {
	Key    string
	Values []string
}

func entries(m *dto.FieldConsiderMap) []entry {
	out := []entry{}
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		out = append(out, entry{Key: k, Values: v})
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []entry
	}{
		{"空输入", "", []entry{}},
		{"只有空白和逗号", " ,, \t", []entry{}},
		{"单个字段", "fax", []entry{{"fax", []string{}}}},
		{"带引号的取值", "email: ['smockit@gmail.com']", []entry{{"email", []string{"smockit@gmail.com"}}}},
		{"多个取值", `Phone: [909090, "6788489"], Fax`, []entry{
			{"phone", []string{"909090", "6788489"}},
			{"fax", []string{}},
		}},
		{"依赖字段保持顺序", "dp-Country: [India], dp-State: [Goa]", []entry{
			{"dp-country", []string{"India"}},
			{"dp-state", []string{"Goa"}},
		}},
		{"依赖字段多个取值合并为一个", "dp-City: [ Panaji, Margao ]", []entry{
			{"dp-city", []string{"Panaji, Margao"}},
		}},
		{"依赖字段无取值", "dp-Country", []entry{{"dp-country", []string{}}}},
		{"依赖字段空括号", "dp-Country: []", []entry{{"dp-country", []string{}}}},
		{"空括号", "phone: []", []entry{{"phone", []string{}}}},
		{"丢弃空取值", "phone: [1,,2, ]", []entry{{"phone", []string{"1", "2"}}}},
		{"冒号后允许空白", "rating:   [Hot]", []entry{{"rating", []string{"Hot"}}}},
		{"重复字段后者覆盖", "phone: [1], fax, PHONE: [2]", []entry{
			{"phone", []string{"2"}},
			{"fax", []string{}},
		}},
		{"未闭合括号不产生记录", "fax, phone: [123, 456", []entry{{"fax", []string{}}}},
		{"没有字段名的括号组被丢弃", ": [a, b] fax", []entry{{"fax", []string{}}}},
		{"冒号后没有括号视为单字段", "phone: website", []entry{
			{"phone", []string{}},
			{"website", []string{}},
		}},
		{"结尾的冒号", "phone:", []entry{{"phone", []string{}}}},
		{"跳过无关字符", "fax; website!", []entry{
			{"fax", []string{}},
			{"website", []string{}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entries(Parse(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) 结果不符 (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		"email: ['smockit@gmail.com']",
		"fax",
		"dp-Country: [India], dp-State: [Goa]",
		`Phone: [909090, "6788489"], Fax, website: ['it"s', "'quoted'"]`,
		"dp-City: [Panaji, Margao], name: [New York]",
		"phone: [1], fax, PHONE: [2]",
		"",
	}
	for _, input := range inputs {
		first := Parse(input)
		second := Parse(Format(first))
		if diff := cmp.Diff(entries(first), entries(second)); diff != "" {
			t.Errorf("Parse(Format(Parse(%q))) 不一致 (-first +second):\n%s", input, diff)
		}
	}
}

func TestFormat(t *testing.T) {
	m := Parse("dp-Country: [India], Phone: [1, 2], fax")
	assert.Equal(t, `dp-country: [India], phone: ["1", "2"], fax`, Format(m))
	assert.Equal(t, "", Format(dto.NewFieldConsiderMap()))
}

func TestParse_JSONKeepsOrder(t *testing.T) {
	m := Parse("dp-State: [Goa], dp-Country: [India], fax")
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"dp-state":["Goa"],"dp-country":["India"],"fax":[]}`, string(data))
}
