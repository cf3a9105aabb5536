package template233

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/neko233-com/template233-go/pkg/template233/prompt"
)

const (
	templateSuffix     = "_data_template"
	templateSuffixJSON = "_data_template.json"
)

// NormalizeTemplateName 补全模板文件名后缀
// 以 _data_template 结尾的补 .json；不以 _data_template.json 结尾的补 _data_template.json
func NormalizeTemplateName(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, templateSuffix):
		return name + ".json"
	case !strings.HasSuffix(lower, templateSuffixJSON):
		return name + templateSuffixJSON
	default:
		return name
	}
}

// ResolveTemplateName 确定最终的模板文件名
// 同名文件已存在时询问是否覆盖；拒绝覆盖则要求输入新名称并重新检查
// 参数:
//
//	ctx: 上下文
//	p: 提问服务
//	printer: 警告输出
//	layout: 目录结构
//	name: 操作员输入的名称
//
// 返回值:
//
//	string: 规范化后的文件名
//	error: 名称为空时返回 ErrMissingTemplateName，操作员中断时返回 prompt.ErrInterrupted
func ResolveTemplateName(ctx context.Context, p prompt.Prompter, printer *prompt.Printer, layout Layout, name string) (string, error) {
	for {
		name = strings.TrimSpace(name)
		if name == "" {
			return "", ErrMissingTemplateName
		}
		fileName := NormalizeTemplateName(name)

		if _, err := os.Stat(layout.TemplatePath(fileName)); errors.Is(err, os.ErrNotExist) {
			return fileName, nil
		} else if err != nil {
			return "", errors.Wrapf(err, "stat %s", layout.TemplatePath(fileName))
		}

		printer.Warn("Warning: Template name already exists!")
		answer, err := p.Ask(ctx, "Do you want to overwrite? (Y/n)", "n")
		if err != nil {
			return "", err
		}
		if prompt.IsYes(answer) {
			return fileName, nil
		}

		name, err = p.Ask(ctx, "Enter new template file name", "one_"+fileName)
		if err != nil {
			return "", err
		}
	}
}
