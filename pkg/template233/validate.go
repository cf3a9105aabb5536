package template233

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
	"github.com/neko233-com/template233-go/pkg/template233/prompt"
)

var documentValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidateDocument 校验模板文档的结构
// 输出格式必须非空且只能是 csv/json/di，记录数必须为正，语言必须是合法的语言标签
// 返回值:
//
//	error: 第一个问题包装为 ErrInvalidDocument，全部问题见 DocumentIssues
func ValidateDocument(cfg *dto.GlobalConfig) error {
	issues := DocumentIssues(cfg)
	if len(issues) == 0 {
		return nil
	}
	return errors.Wrapf(ErrInvalidDocument, "%s (%d issue(s))", issues[0], len(issues))
}

// DocumentIssues 列出模板文档的所有结构问题
func DocumentIssues(cfg *dto.GlobalConfig) []string {
	var issues []string
	if err := documentValidator.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				issues = append(issues, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
			}
		} else {
			issues = append(issues, err.Error())
		}
	}

	if cfg.Language != "" {
		if _, err := language.Parse(cfg.Language); err != nil {
			issues = append(issues, fmt.Sprintf("language %q is not a valid language tag", cfg.Language))
		}
	}
	for _, entry := range cfg.SObjects {
		if entry.Settings == nil || entry.Settings.Language == "" {
			continue
		}
		if _, err := language.Parse(entry.Settings.Language); err != nil {
			issues = append(issues, fmt.Sprintf("%s: language %q is not a valid language tag", entry.Name, entry.Settings.Language))
		}
	}
	return issues
}

// ValidationIssue 校验发现的一个问题
type ValidationIssue struct {
	Object  string
	Field   string
	Message string
}

func (i ValidationIssue) String() string {
	switch {
	case i.Object == "":
		return i.Message
	case i.Field == "":
		return fmt.Sprintf("%s: %s", i.Object, i.Message)
	default:
		return fmt.Sprintf("%s.%s: %s", i.Object, i.Field, i.Message)
	}
}

// ValidationReport 模板校验报告
type ValidationReport struct {
	Path   string
	Issues []ValidationIssue
}

// OK 没有发现问题
func (r *ValidationReport) OK() bool {
	return len(r.Issues) == 0
}

// Print 把报告输出给操作员
func (r *ValidationReport) Print(printer *prompt.Printer) {
	if r.OK() {
		printer.Success("Success: all objects and fields in %s are valid.", r.Path)
		return
	}
	printer.Warn("Warning: %d issue(s) found in %s:", len(r.Issues), r.Path)
	for _, issue := range r.Issues {
		printer.Warn("  - %s", issue)
	}
}

// TemplateValidator 模板校验服务
// 对已写出的模板文件做事后校验，结果只用于展示
type TemplateValidator interface {
	Validate(ctx context.Context, path string) (*ValidationReport, error)
}

// CatalogValidator 基于结构目录的模板校验
type CatalogValidator struct {
	catalog *Catalog
}

// NewCatalogValidator 创建校验服务
func NewCatalogValidator(catalog *Catalog) *CatalogValidator {
	return &CatalogValidator{catalog: catalog}
}

// Validate 重新读取模板文件，校验对象名和字段名是否存在于结构目录
// 依赖字段去掉 dp- 前缀后再查找
// 参数:
//
//	ctx: 上下文
//	path: 模板文件路径
//
// 返回值:
//
//	*ValidationReport: 校验报告
//	error: 文件无法读取或解析
func (v *CatalogValidator) Validate(ctx context.Context, path string) (*ValidationReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, err := ReadTemplate(path)
	if err != nil {
		return nil, err
	}

	report := &ValidationReport{Path: path}
	for _, issue := range DocumentIssues(cfg) {
		report.Issues = append(report.Issues, ValidationIssue{Message: issue})
	}

	for _, entry := range cfg.SObjects {
		object := strings.ToLower(entry.Name)
		if !v.catalog.HasObject(object) {
			report.Issues = append(report.Issues, ValidationIssue{Object: object, Message: "object not found in schema catalog"})
			continue
		}
		if entry.Settings == nil {
			continue
		}
		for _, field := range entry.Settings.FieldsToExclude {
			v.checkField(report, object, field, "fieldsToExclude")
		}
		for _, field := range entry.Settings.FieldsToConsider.Keys() {
			v.checkField(report, object, field, "fieldsToConsider")
		}
		if conflicts := conflictingFields(entry.Settings); len(conflicts) > 0 {
			report.Issues = append(report.Issues, ValidationIssue{
				Object:  object,
				Message: fmt.Sprintf("fields both excluded and considered: %s", strings.Join(conflicts, ",")),
			})
		}
	}

	getLogger().Info("模板校验完成", "path", path, "issues", len(report.Issues))
	return report, nil
}

func (v *CatalogValidator) checkField(report *ValidationReport, object, field, list string) {
	name := strings.TrimPrefix(strings.ToLower(field), dto.DependentPrefix)
	if !v.catalog.HasField(object, name) {
		report.Issues = append(report.Issues, ValidationIssue{
			Object:  object,
			Field:   name,
			Message: fmt.Sprintf("field in %s not found in schema catalog", list),
		})
	}
}
