package dto

import (
	"encoding/json"
	"fmt"
)

// OutputFormat 测试数据输出格式
type OutputFormat string

const (
	OutputCSV  OutputFormat = "csv"
	OutputJSON OutputFormat = "json"
	// OutputDI 直接插入已连接的组织（最多 200 条记录）
	OutputDI OutputFormat = "di"
)

// AllOutputFormats 所有合法的输出格式，按展示顺序排列
var AllOutputFormats = []OutputFormat{OutputCSV, OutputJSON, OutputDI}

// GlobalConfig 数据模板文档
// 全局默认设置加上按对象的覆盖设置，序列化后即为模板文件内容
type GlobalConfig struct {
	TemplateFileName   string         `json:"templateFileName" validate:"required"`
	NamespaceToExclude []string       `json:"namespaceToExclude"`
	OutputFormat       []OutputFormat `json:"outputFormat" validate:"min=1,dive,oneof=csv json di"`
	Language           string         `json:"language"`
	Count              int            `json:"count" validate:"min=1"`
	SObjects           []ObjectEntry  `json:"sObjects" validate:"dive"`
}

// ObjectSettings 单个对象的覆盖设置
// 所有字段均可选，缺省表示继承全局默认值
type ObjectSettings struct {
	Count            *int              `json:"count,omitempty" validate:"omitempty,min=1"`
	Language         string            `json:"language,omitempty"`
	FieldsToExclude  []string          `json:"fieldsToExclude,omitempty"`
	FieldsToConsider *FieldConsiderMap `json:"fieldsToConsider,omitempty" validate:"-"`
	PickLeftFields   *bool             `json:"pickLeftFields,omitempty"`
}

// Clone 深拷贝
func (s *ObjectSettings) Clone() *ObjectSettings {
	if s == nil {
		return nil
	}
	out := &ObjectSettings{
		Language:         s.Language,
		FieldsToConsider: s.FieldsToConsider.Clone(),
	}
	if s.Count != nil {
		count := *s.Count
		out.Count = &count
	}
	if s.PickLeftFields != nil {
		pick := *s.PickLeftFields
		out.PickLeftFields = &pick
	}
	if s.FieldsToExclude != nil {
		out.FieldsToExclude = append([]string(nil), s.FieldsToExclude...)
	}
	return out
}

// ObjectEntry 对象名与其覆盖设置
// JSON 形式为单键对象，如 {"lead": {"count": 5}}
type ObjectEntry struct {
	Name     string          `validate:"required"`
	Settings *ObjectSettings `validate:"omitempty"`
}

// MarshalJSON 输出单键对象，未设置时输出 {}
func (e ObjectEntry) MarshalJSON() ([]byte, error) {
	settings := e.Settings
	if settings == nil {
		settings = &ObjectSettings{}
	}
	return json.Marshal(map[string]*ObjectSettings{e.Name: settings})
}

// UnmarshalJSON 读取单键对象
func (e *ObjectEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]*ObjectSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("sObjects entry must have exactly one key, got %d", len(raw))
	}
	for name, settings := range raw {
		e.Name = name
		e.Settings = settings
	}
	if e.Settings == nil {
		e.Settings = &ObjectSettings{}
	}
	return nil
}
