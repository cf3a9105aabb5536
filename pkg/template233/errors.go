package template233

import (
	"github.com/cockroachdb/errors"
)

// 输入类错误，重新提问即可，不会中断会话
var (
	// ErrInvalidCount 记录数不是正整数
	ErrInvalidCount = errors.New("invalid count: expected a positive integer")
)

// 致命错误，会话直接结束且不写出任何文件
var (
	// ErrMissingTemplateName 未提供模板文件名
	ErrMissingTemplateName = errors.New("please provide template data file name")

	// ErrDirectoryCreation 无法创建 data_gen 目录结构
	ErrDirectoryCreation = errors.New("failed to create data_gen directory structure")
)

// 文档与结构目录相关错误
var (
	// ErrInvalidDocument 模板文档未通过结构校验
	ErrInvalidDocument = errors.New("invalid data template")

	// ErrCatalogLoad 结构目录无法读取
	ErrCatalogLoad = errors.New("failed to load schema catalog")

	// ErrUnsupportedSchemaFile 不支持的结构描述文件格式
	ErrUnsupportedSchemaFile = errors.Wrap(ErrCatalogLoad, "unsupported schema file")
)
