package template233

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/cockroachdb/errors"
)

//go:embed default_data_template.json.tmpl
var defaultTemplateText string

var defaultTemplate = template.Must(template.New("default").Funcs(template.FuncMap{
	"json": func(v interface{}) (string, error) {
		data, err := json.Marshal(v)
		return string(data), err
	},
}).Parse(defaultTemplateText))

// CreateDefaultTemplate 在模板目录写出带注释的示例模板
// 文件名为 default_data_template.json，已存在时依次尝试 default_data_template_1.json、_2 ...
// 返回值:
//
//	string: 写出的文件路径
//	error: 写入失败
func CreateDefaultTemplate(layout Layout) (string, error) {
	path := layout.TemplatePath("default_data_template.json")
	for n := 1; ; n++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			break
		}
		path = layout.TemplatePath(fmt.Sprintf("default_data_template_%d.json", n))
	}

	var buf bytes.Buffer
	if err := defaultTemplate.Execute(&buf, struct{ TemplateFileName string }{filepath.Base(path)}); err != nil {
		return "", errors.Wrap(err, "render default template")
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}
