package template233

import "github.com/neko233-com/template233-go/pkg/template233/dto"

// SchemaHandler 结构描述文件处理器接口
// 定义不同格式结构描述文件（JSON、TSV、Excel）的读取接口
// 每个处理器负责一种格式，输出统一的数据行列表，每行描述对象上的一个字段
type SchemaHandler interface {
	// TypeName 处理器类型名
	// 返回值:
	//   string: 处理器类型名称，如 "json", "tsv", "excel"
	TypeName() string

	// ReadSchemaRows 读取结构描述文件
	// 参数:
	//   sourceName: 来源名称（文件名，不含扩展名）
	//   fileFullPath: 文件的完整路径
	// 返回值:
	//   *dto.SchemaRowsDto: 数据行列表，列名统一为小写
	//   error: 读取或解析失败
	ReadSchemaRows(sourceName, fileFullPath string) (*dto.SchemaRowsDto, error)
}
