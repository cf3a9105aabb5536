package template233

import (
	"slices"

	"github.com/hashicorp/go-set/v2"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
	"github.com/neko233-com/template233-go/pkg/template233/prompt"
)

// GlobalAnswers 全局问题的回答
type GlobalAnswers struct {
	TemplateFileName   string
	NamespaceToExclude []string
	OutputFormat       []dto.OutputFormat
	Language           string
	Count              int
}

// DedupeObjectNames 对象名转为小写并按首次出现去重，保持顺序
// 例如 ["Lead", "lead", "Contact"] → ["lead", "contact"]
func DedupeObjectNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := set.New[string](len(names))
	for _, name := range names {
		name = normalizeName(name)
		if name != "" && seen.Insert(name) {
			out = append(out, name)
		}
	}
	return out
}

// ParseObjectNames 解析逗号或空白分隔的对象名列表
// 结果为空时回退为 ["lead"]
func ParseObjectNames(input string) []string {
	names := DedupeObjectNames(prompt.SplitList(input))
	if len(names) == 0 {
		names = append(names, "lead")
	}
	return names
}

// Assemble 合并全局回答和对象覆盖设置，生成模板文档
// 按 objectNames 的顺序输出对象；没有覆盖设置的对象使用空设置，表示完全继承全局默认值
// 设置会被拷贝，之后修改仓库不影响返回的文档
// 参数:
//
//	global: 全局问题的回答
//	store: 对象设置仓库
//	objectNames: 已去重、小写、保持顺序的对象名
//
// 返回值:
//
//	*dto.GlobalConfig: 模板文档
func Assemble(global GlobalAnswers, store *ObjectSettingsStore, objectNames []string) *dto.GlobalConfig {
	cfg := &dto.GlobalConfig{
		TemplateFileName:   global.TemplateFileName,
		NamespaceToExclude: slices.Clone(global.NamespaceToExclude),
		OutputFormat:       slices.Clone(global.OutputFormat),
		Language:           global.Language,
		Count:              global.Count,
		SObjects:           make([]dto.ObjectEntry, 0, len(objectNames)),
	}
	if cfg.NamespaceToExclude == nil {
		cfg.NamespaceToExclude = []string{}
	}

	for _, name := range objectNames {
		settings, ok := store.Get(name)
		if ok {
			settings = settings.Clone()
		} else {
			settings = &dto.ObjectSettings{}
		}
		cfg.SObjects = append(cfg.SObjects, dto.ObjectEntry{Name: name, Settings: settings})
	}

	getLogger().V(1).Info("模板文档已合并", "objects", len(cfg.SObjects), "overridden", len(store.Names()))
	return cfg
}
