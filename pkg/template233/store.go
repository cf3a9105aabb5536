package template233

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
)

// ObjectSettingsStore 对象覆盖设置仓库
// 保存对象名到覆盖设置的映射；记录只会新增和修改，不会删除
// 对象名统一转为小写
type ObjectSettingsStore struct {
	settings  map[string]*dto.ObjectSettings
	order     []string                 // 记录创建顺序
	listeners []SettingsChangeListener // 变更监听器
	mu        sync.RWMutex
}

// NewObjectSettingsStore 创建空仓库
func NewObjectSettingsStore() *ObjectSettingsStore {
	return &ObjectSettingsStore{
		settings:  make(map[string]*dto.ObjectSettings),
		listeners: []SettingsChangeListener{logSettingsChange},
	}
}

// AddListener 注册变更监听器
func (s *ObjectSettingsStore) AddListener(listener SettingsChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ensureLocked 调用方需持有写锁
func (s *ObjectSettingsStore) ensureLocked(name string) *dto.ObjectSettings {
	if existing, ok := s.settings[name]; ok {
		return existing
	}
	created := &dto.ObjectSettings{}
	s.settings[name] = created
	s.order = append(s.order, name)
	return created
}

// Ensure 获取对象的设置记录，不存在时创建空记录
// 幂等：已存在的记录原样返回
// 参数:
//
//	name: 对象名，不区分大小写
//
// 返回值:
//
//	*dto.ObjectSettings: 对象的设置记录
func (s *ObjectSettingsStore) Ensure(name string) *dto.ObjectSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked(normalizeName(name))
}

// Get 获取对象的设置记录
func (s *ObjectSettingsStore) Get(name string) (*dto.ObjectSettings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings, ok := s.settings[normalizeName(name)]
	return settings, ok
}

// Names 按创建顺序返回所有已覆盖的对象名
func (s *ObjectSettingsStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// update 在写锁内修改记录，然后通知监听器
func (s *ObjectSettingsStore) update(name string, fn func(*dto.ObjectSettings)) {
	name = normalizeName(name)

	s.mu.Lock()
	settings := s.ensureLocked(name)
	fn(settings)
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener.OnSettingsChange(name, settings)
	}
}

// SetCount 解析并设置记录数
// 空输入表示接受默认值，不做修改也不报错
// 参数:
//
//	name: 对象名
//	rawInput: 操作员输入的原始文本
//
// 返回值:
//
//	error: 输入不是正整数时返回 ErrInvalidCount
func (s *ObjectSettingsStore) SetCount(name, rawInput string) error {
	raw := strings.TrimSpace(rawInput)
	if raw == "" {
		return nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count <= 0 {
		return errors.Wrapf(ErrInvalidCount, "%q", raw)
	}
	s.update(name, func(settings *dto.ObjectSettings) {
		settings.Count = &count
	})
	return nil
}

// SetLanguage 设置语言
func (s *ObjectSettingsStore) SetLanguage(name, language string) {
	s.update(name, func(settings *dto.ObjectSettings) {
		settings.Language = language
	})
}

// SetFieldsToExclude 设置排除字段，字段名转为小写并去重
func (s *ObjectSettingsStore) SetFieldsToExclude(name string, fields []string) {
	var unique []string
	seen := set.New[string](len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && seen.Insert(f) {
			unique = append(unique, f)
		}
	}
	s.update(name, func(settings *dto.ObjectSettings) {
		settings.FieldsToExclude = unique
	})
}

// SetFieldsToConsider 设置需要生成数据的字段
func (s *ObjectSettingsStore) SetFieldsToConsider(name string, fields *dto.FieldConsiderMap) {
	s.update(name, func(settings *dto.ObjectSettings) {
		settings.FieldsToConsider = fields
	})
}

// SetPickLeftFields 设置是否为其余字段生成数据
func (s *ObjectSettingsStore) SetPickLeftFields(name string, pick bool) {
	s.update(name, func(settings *dto.ObjectSettings) {
		settings.PickLeftFields = &pick
	})
}

// DetectConflicts 找出同时出现在排除列表和包含列表中的字段
// 比较不区分大小写，不修改状态，结果按字母序排列
// 参数:
//
//	name: 对象名
//
// 返回值:
//
//	[]string: 冲突字段，没有冲突或对象不存在时为空
func (s *ObjectSettingsStore) DetectConflicts(name string) []string {
	settings, ok := s.Get(name)
	if !ok {
		return nil
	}
	return conflictingFields(settings)
}

func conflictingFields(settings *dto.ObjectSettings) []string {
	exclude := set.New[string](len(settings.FieldsToExclude))
	for _, f := range settings.FieldsToExclude {
		exclude.Insert(strings.ToLower(f))
	}
	consider := set.New[string](settings.FieldsToConsider.Len())
	for _, f := range settings.FieldsToConsider.Keys() {
		consider.Insert(strings.ToLower(f))
	}
	conflicts := exclude.Intersect(consider).(*set.Set[string]).Slice()
	slices.Sort(conflicts)
	return conflicts
}

// IsDeadEnd 判断对象是否没有任何可生成数据的字段
// 当且仅当 fieldsToConsider 为空且 pickLeftFields 明确为 false
func (s *ObjectSettingsStore) IsDeadEnd(name string) bool {
	settings, ok := s.Get(name)
	if !ok {
		return false
	}
	return settings.FieldsToConsider.Len() == 0 &&
		settings.PickLeftFields != nil && !*settings.PickLeftFields
}
