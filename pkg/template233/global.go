package template233

import (
	"context"
	"strconv"
	"strings"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
	"github.com/neko233-com/template233-go/pkg/template233/prompt"
)

// GlobalOptions 全局问题的默认值
type GlobalOptions struct {
	DefaultTemplateName string
	DefaultObjects      string
	DefaultCount        int
	Languages           []string
}

func (o GlobalOptions) withDefaults() GlobalOptions {
	if o.DefaultTemplateName == "" {
		o.DefaultTemplateName = "account_creation_data_template"
	}
	if o.DefaultObjects == "" {
		o.DefaultObjects = "Lead"
	}
	if o.DefaultCount <= 0 {
		o.DefaultCount = 1
	}
	if len(o.Languages) == 0 {
		o.Languages = []string{"en"}
	}
	return o
}

func outputFormatChoices() []prompt.Choice {
	return []prompt.Choice{
		{Name: "CSV", Value: string(dto.OutputCSV)},
		{Name: "JSON", Value: string(dto.OutputJSON)},
		{Name: "DI", Value: string(dto.OutputDI), Hint: "direct insertion of up to 200 records"},
	}
}

// GlobalCollector 依次提出全局问题
type GlobalCollector struct {
	prompter prompt.Prompter
	printer  *prompt.Printer
	layout   Layout
	opts     GlobalOptions
}

// NewGlobalCollector 创建全局问题收集器
func NewGlobalCollector(p prompt.Prompter, printer *prompt.Printer, layout Layout, opts GlobalOptions) *GlobalCollector {
	return &GlobalCollector{prompter: p, printer: printer, layout: layout, opts: opts.withDefaults()}
}

// Collect 收集全局回答和对象列表
// 顺序: 模板名 → 排除的命名空间 → 输出格式 → 语言 → 记录数 → 对象列表
// 返回值:
//
//	GlobalAnswers: 全局回答
//	[]string: 去重后的对象名
//	error: ErrMissingTemplateName 或 prompt.ErrInterrupted
func (c *GlobalCollector) Collect(ctx context.Context) (GlobalAnswers, []string, error) {
	var answers GlobalAnswers

	rawName, err := c.prompter.Ask(ctx, "Provide a template name", c.opts.DefaultTemplateName)
	if err != nil {
		return answers, nil, err
	}
	if answers.TemplateFileName, err = ResolveTemplateName(ctx, c.prompter, c.printer, c.layout, rawName); err != nil {
		return answers, nil, err
	}

	if answers.NamespaceToExclude, err = c.askNamespaces(ctx); err != nil {
		return answers, nil, err
	}
	if answers.OutputFormat, err = c.askOutputFormat(ctx); err != nil {
		return answers, nil, err
	}
	if answers.Language, err = c.askLanguage(ctx); err != nil {
		return answers, nil, err
	}
	if answers.Count, err = c.askCount(ctx); err != nil {
		return answers, nil, err
	}

	rawObjects, err := c.prompter.Ask(ctx, "List Objects(API names) for data creation "+c.printer.Dim("(comma-separated)"), c.opts.DefaultObjects)
	if err != nil {
		return answers, nil, err
	}
	objects := ParseObjectNames(rawObjects)

	getLogger().V(1).Info("全局设置已收集",
		"template", answers.TemplateFileName,
		"formats", answers.OutputFormat,
		"language", answers.Language,
		"count", answers.Count,
		"objects", objects,
	)
	return answers, objects, nil
}

func (c *GlobalCollector) askNamespaces(ctx context.Context) ([]string, error) {
	raw, err := c.prompter.Ask(ctx, "Exclude namespace(s) "+c.printer.Dim("(comma-separated)"), "")
	if err != nil {
		return nil, err
	}
	namespaces := prompt.SplitList(raw)
	if namespaces == nil {
		namespaces = []string{}
	}
	return namespaces, nil
}

func (c *GlobalCollector) askOutputFormat(ctx context.Context) ([]dto.OutputFormat, error) {
	for {
		values, err := c.prompter.MultiSelect(ctx, "Select output format [CSV, JSON, DI]", outputFormatChoices())
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			formats := make([]dto.OutputFormat, 0, len(values))
			for _, v := range values {
				formats = append(formats, dto.OutputFormat(strings.ToLower(v)))
			}
			return formats, nil
		}
		c.printer.Warn("Invalid input. Please enter only CSV, JSON, or DI.")
	}
}

func (c *GlobalCollector) askLanguage(ctx context.Context) (string, error) {
	language, err := c.prompter.Select(ctx, "Choose a language for test data", prompt.Choices(c.opts.Languages...))
	if err != nil {
		return "", err
	}
	if language == "" {
		language = c.opts.Languages[0]
	}
	return language, nil
}

// askCount 非数字回答取默认值，非正数重新提问
func (c *GlobalCollector) askCount(ctx context.Context) (int, error) {
	def := strconv.Itoa(c.opts.DefaultCount)
	for {
		raw, err := c.prompter.Ask(ctx, "Specify test data count", def)
		if err != nil {
			return 0, err
		}
		count, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return c.opts.DefaultCount, nil
		}
		if count > 0 {
			return count, nil
		}
		c.printer.Warn("Invalid input. Please enter a valid number")
	}
}
