package dto

// SchemaRowsDto 结构目录文件读取结果
// 各格式处理器（JSON、TSV、Excel）读取结构描述文件后统一输出的数据传输对象
// 每一行描述一个对象上的一个字段
type SchemaRowsDto struct {
	// Rows 数据行列表，每个元素是一个列名到单元格值的映射
	Rows []map[string]string `json:"rows"`
	// Type 处理器类型，如 "json", "excel", "tsv"
	Type string `json:"type"`
	// Suffix 文件扩展名，如 "json", "xlsx", "tsv"
	Suffix string `json:"suffix"`
	// SourceNameSimple 来源文件的简单名称，不包含路径和扩展名
	SourceNameSimple string `json:"sourceNameSimple"`
}

// 结构目录文件中的标准列名
const (
	ColumnObject    = "object"
	ColumnField     = "field"
	ColumnType      = "type"
	ColumnNamespace = "namespace"
)
