package template233

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Layout 数据生成目录结构
//
//	<root>/
//	  templates/  模板文件
//	  output/     生成的测试数据
type Layout struct {
	Root string
}

// TemplatesDir 模板目录
func (l Layout) TemplatesDir() string {
	return filepath.Join(l.Root, "templates")
}

// OutputDir 输出目录
func (l Layout) OutputDir() string {
	return filepath.Join(l.Root, "output")
}

// TemplatePath 模板文件的完整路径
func (l Layout) TemplatePath(fileName string) string {
	return filepath.Join(l.TemplatesDir(), fileName)
}

// EnsureLayout 创建目录结构，已存在的目录保持不变
// 参数:
//
//	root: 根目录，通常为 <当前目录>/data_gen
//
// 返回值:
//
//	Layout: 目录结构
//	bool: 根目录是否为本次新建
//	error: 创建失败时返回 ErrDirectoryCreation
func EnsureLayout(root string) (Layout, bool, error) {
	layout := Layout{Root: root}

	created := false
	if _, err := os.Stat(root); errors.Is(err, os.ErrNotExist) {
		created = true
	}
	for _, dir := range []string{layout.Root, layout.TemplatesDir(), layout.OutputDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return layout, false, errors.Mark(errors.Wrapf(err, "mkdir %s", dir), ErrDirectoryCreation)
		}
	}

	getLogger().V(1).Info("目录结构就绪", "root", root, "created", created)
	return layout, created, nil
}
