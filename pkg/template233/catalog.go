package template233

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
	"github.com/neko233-com/template233-go/pkg/template233/excel"
	jsonhandler "github.com/neko233-com/template233-go/pkg/template233/json"
	"github.com/neko233-com/template233-go/pkg/template233/tsv"
)

// Catalog 结构目录
// 对象名到字段名集合的映射，名称统一为小写
// 用于校验模板中的对象和字段是否存在
type Catalog struct {
	objects map[string]*set.Set[string]
}

// NewCatalog 创建空目录
func NewCatalog() *Catalog {
	return &Catalog{objects: make(map[string]*set.Set[string])}
}

// Add 登记对象及其字段，field 为空时只登记对象
func (c *Catalog) Add(object, field string) {
	object = strings.ToLower(strings.TrimSpace(object))
	if object == "" {
		return
	}
	fields, ok := c.objects[object]
	if !ok {
		fields = set.New[string](0)
		c.objects[object] = fields
	}
	if field = strings.ToLower(strings.TrimSpace(field)); field != "" {
		fields.Insert(field)
	}
}

// HasObject 对象是否存在
func (c *Catalog) HasObject(object string) bool {
	_, ok := c.objects[strings.ToLower(object)]
	return ok
}

// HasField 对象上是否存在该字段
func (c *Catalog) HasField(object, field string) bool {
	fields, ok := c.objects[strings.ToLower(object)]
	return ok && fields.Contains(strings.ToLower(field))
}

// Objects 按字母序返回所有对象名
func (c *Catalog) Objects() []string {
	names := make([]string, 0, len(c.objects))
	for name := range c.objects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Fields 按字母序返回对象的所有字段名
func (c *Catalog) Fields(object string) []string {
	fields, ok := c.objects[strings.ToLower(object)]
	if !ok {
		return nil
	}
	out := fields.Slice()
	slices.Sort(out)
	return out
}

// CatalogLoader 结构目录加载器
// 遍历目录，按扩展名选择处理器读取结构描述文件
type CatalogLoader struct {
	handlers map[string]SchemaHandler // 扩展名（不含点）到处理器的映射
}

// NewCatalogLoader 创建加载器，默认注册 json、tsv、xlsx 处理器
func NewCatalogLoader() *CatalogLoader {
	return (&CatalogLoader{handlers: make(map[string]SchemaHandler)}).
		AddSchemaHandler("json", &jsonhandler.JsonSchemaHandler{}).
		AddSchemaHandler("tsv", &tsv.TsvSchemaHandler{}).
		AddSchemaHandler("xlsx", &excel.ExcelSchemaHandler{})
}

// AddSchemaHandler 添加结构描述文件处理器
// ext: 文件扩展名（如 "json", "xlsx"）
// handler: 对应的处理器实现
// 返回 CatalogLoader 实例支持链式调用
func (l *CatalogLoader) AddSchemaHandler(ext string, handler SchemaHandler) *CatalogLoader {
	l.handlers[strings.ToLower(strings.TrimPrefix(ext, "."))] = handler
	return l
}

// ReadFile 用对应的处理器读取单个结构描述文件
func (l *CatalogLoader) ReadFile(path string) (*dto.SchemaRowsDto, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	handler, ok := l.handlers[ext]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedSchemaFile, "%s", path)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return handler.ReadSchemaRows(name, path)
}

// Load 从目录加载结构目录
// 单个文件读取失败会被记录并跳过，不会中断整个加载过程
// 参数:
//
//	dir: 结构描述文件所在目录
//
// 返回值:
//
//	*Catalog: 合并后的结构目录
//	error: 遍历目录失败时返回 ErrCatalogLoad
func (l *CatalogLoader) Load(dir string) (*Catalog, error) {
	catalog := NewCatalog()
	loaded := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, ok := l.handlers[ext]; !ok {
			return nil
		}

		rows, err := l.ReadFile(path)
		if err != nil {
			getLogger().Error(err, "读取结构描述文件失败", "path", path)
			return nil // 继续处理其他文件
		}
		for _, row := range rows.Rows {
			catalog.Add(row[dto.ColumnObject], row[dto.ColumnField])
		}
		loaded++
		getLogger().V(1).Info("已加载结构描述文件", "path", path, "type", rows.Type, "rows", len(rows.Rows))
		return nil
	})
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "walk %s", dir), ErrCatalogLoad)
	}

	getLogger().Info("结构目录加载完成", "dir", dir, "files", loaded, "objects", len(catalog.objects))
	return catalog, nil
}
