package dto

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DependentPrefix 依赖选择列表字段的键前缀
// 以该前缀开头的字段只允许携带一个值，字段出现的先后顺序表示依赖链
const DependentPrefix = "dp-"

// FieldConsiderMap 需要生成数据的字段映射
// 字段名（小写）到候选值列表的有序映射，保留插入顺序
// 空列表表示「包含该字段，不指定取值」
// 零值可以直接使用
type FieldConsiderMap struct {
	m *orderedmap.OrderedMap[string, []string]
}

// NewFieldConsiderMap 创建空的字段映射
func NewFieldConsiderMap() *FieldConsiderMap {
	return &FieldConsiderMap{m: orderedmap.New[string, []string]()}
}

func (f *FieldConsiderMap) init() {
	if f.m == nil {
		f.m = orderedmap.New[string, []string]()
	}
}

// Set 设置字段的候选值
// 已存在的字段保持原有位置，只覆盖取值
// 参数:
//
//	field: 字段名
//	values: 候选值列表，nil 视为空列表
func (f *FieldConsiderMap) Set(field string, values []string) {
	f.init()
	cp := make([]string, len(values))
	copy(cp, values)
	f.m.Set(field, cp)
}

// Get 获取字段的候选值
func (f *FieldConsiderMap) Get(field string) ([]string, bool) {
	if f == nil || f.m == nil {
		return nil, false
	}
	return f.m.Get(field)
}

// Keys 按插入顺序返回所有字段名
func (f *FieldConsiderMap) Keys() []string {
	if f == nil || f.m == nil {
		return nil
	}
	keys := make([]string, 0, f.m.Len())
	for pair := f.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len 字段数量
func (f *FieldConsiderMap) Len() int {
	if f == nil || f.m == nil {
		return 0
	}
	return f.m.Len()
}

// IsDependent 判断字段是否为依赖选择列表字段
func IsDependent(field string) bool {
	return len(field) >= len(DependentPrefix) && field[:len(DependentPrefix)] == DependentPrefix
}

// Clone 深拷贝
func (f *FieldConsiderMap) Clone() *FieldConsiderMap {
	if f == nil {
		return nil
	}
	out := NewFieldConsiderMap()
	for _, key := range f.Keys() {
		values, _ := f.Get(key)
		out.Set(key, values)
	}
	return out
}

// MarshalJSON 按插入顺序输出 JSON 对象
func (f *FieldConsiderMap) MarshalJSON() ([]byte, error) {
	if f == nil || f.m == nil || f.m.Len() == 0 {
		return []byte("{}"), nil
	}
	return f.m.MarshalJSON()
}

// UnmarshalJSON 读取 JSON 对象并保留键顺序
func (f *FieldConsiderMap) UnmarshalJSON(data []byte) error {
	f.m = orderedmap.New[string, []string]()
	if err := f.m.UnmarshalJSON(data); err != nil {
		return err
	}
	// null 数组统一为空列表
	for pair := f.m.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			pair.Value = []string{}
		}
	}
	return nil
}
