package template233

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
	"github.com/neko233-com/template233-go/pkg/template233/prompt"
)

// InitOptions 模板初始化选项
type InitOptions struct {
	// DataDir data_gen 根目录
	DataDir string
	// CreateDefault 是否先写出带注释的示例模板
	CreateDefault bool
	// Global 全局问题的默认值
	Global GlobalOptions
	// SchemaDir 结构目录的默认位置，用于事后校验
	SchemaDir string
	// Watch 校验后持续监听模板文件，每次修改都重新校验
	Watch bool
	// NewValidator 根据结构目录创建校验服务，为空时使用 CatalogLoader
	NewValidator func(schemaDir string) (TemplateValidator, error)
}

// InitResult 模板初始化结果
type InitResult struct {
	Path   string
	Config *dto.GlobalConfig
	Report *ValidationReport
}

func newCatalogValidator(schemaDir string) (TemplateValidator, error) {
	catalog, err := NewCatalogLoader().Load(schemaDir)
	if err != nil {
		return nil, err
	}
	return NewCatalogValidator(catalog), nil
}

// Init 交互式创建数据模板
// 流程: 目录结构 → (示例模板) → 全局问题 → 对象覆盖会话 → 合并 → 写文件 → (校验) → (监听)
// 任何一步在写文件之前失败或被中断，都不会产生模板文件
// 参数:
//
//	ctx: 上下文，取消即中断整个会话
//	p: 提问服务
//	printer: 面向操作员的输出
//	opts: 初始化选项
//
// 返回值:
//
//	*InitResult: 写出的文件和文档
//	error: 致命错误或 prompt.ErrInterrupted
func Init(ctx context.Context, p prompt.Prompter, printer *prompt.Printer, opts InitOptions) (*InitResult, error) {
	layout, created, err := EnsureLayout(opts.DataDir)
	if err != nil {
		return nil, err
	}
	if created {
		printer.Success("Success: data-gen structure created: %s", layout.Root)
	}

	printer.Bold("=====================================")
	printer.Bold("🚀 Creating Data Template File 🚀")
	printer.Bold("=====================================")

	if opts.CreateDefault {
		path, err := CreateDefaultTemplate(layout)
		if err != nil {
			return nil, err
		}
		printer.Success("Success: default data template created at %s", path)
	}

	answers, objects, err := NewGlobalCollector(p, printer, layout, opts.Global).Collect(ctx)
	if err != nil {
		return nil, err
	}

	store := NewObjectSettingsStore()
	session := NewOverrideSession(p, printer, store, objects, opts.Global.withDefaults().Languages)
	if err := session.Run(ctx); err != nil {
		return nil, err
	}

	cfg := Assemble(answers, store, session.Objects())
	if err := ValidateDocument(cfg); err != nil {
		return nil, err
	}

	path := layout.TemplatePath(answers.TemplateFileName)
	if err := WriteTemplate(path, cfg); err != nil {
		return nil, err
	}
	result := &InitResult{Path: path, Config: cfg}

	validator, err := askValidator(ctx, p, printer, opts)
	if err != nil {
		return nil, err
	}
	if validator != nil {
		result.Report, err = validator.Validate(ctx, path)
		if err != nil {
			printer.Danger("Validation failed: %v", err)
		} else {
			result.Report.Print(printer)
		}
	}

	printer.Success("Success: %s created at %s", answers.TemplateFileName, path)

	if opts.Watch {
		if validator == nil {
			printer.Note("Note: watch mode needs a schema catalog; skipping.")
			return result, nil
		}
		printer.Note("Watching %s for changes. Press Ctrl+C to stop.", path)
		watcher := NewTemplateWatcher(path, func() {
			report, err := validator.Validate(ctx, path)
			if err != nil {
				printer.Danger("Validation failed: %v", err)
				return
			}
			report.Print(printer)
		})
		if err := watcher.Run(ctx); err != nil {
			return result, err
		}
	}
	return result, nil
}

// askValidator 询问是否校验，返回 nil 表示跳过
func askValidator(ctx context.Context, p prompt.Prompter, printer *prompt.Printer, opts InitOptions) (TemplateValidator, error) {
	answer, err := p.Ask(ctx, "Validate the added sObjects and their fields against a schema catalog?(Y/n)", "n")
	if err != nil {
		return nil, err
	}
	if !prompt.IsYes(answer) {
		return nil, nil
	}

	dir, err := p.Ask(ctx, "Enter the schema catalog directory", opts.SchemaDir)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		printer.Warn("Warning: no schema catalog directory given; skipping validation.")
		return nil, nil
	}

	factory := opts.NewValidator
	if factory == nil {
		factory = newCatalogValidator
	}
	validator, err := factory(dir)
	if err != nil {
		if errors.Is(err, ErrCatalogLoad) {
			printer.Danger("Error: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return validator, nil
}
