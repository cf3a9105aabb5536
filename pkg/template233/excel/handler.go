package excel

import (
	"strings"

	"github.com/neko233-com/template233-go/pkg/template233/dto"

	"github.com/xuri/excelize/v2"
)

// ExcelSchemaHandler Excel 结构描述处理器
// 读取第一个工作表，第一行为表头
type ExcelSchemaHandler struct{}

// TypeName 返回处理器类型名
// 返回值:
//
//	string: "excel"
func (h *ExcelSchemaHandler) TypeName() string {
	return "excel"
}

// ReadSchemaRows 读取 Excel 结构描述文件
// 参数:
//
//	sourceName: 来源名称
//	fileFullPath: xlsx 文件的完整路径
//
// 返回值:
//
//	*dto.SchemaRowsDto: 数据行列表，没有工作表或数据行时 Rows 为 nil
//	error: 打开或读取失败
func (h *ExcelSchemaHandler) ReadSchemaRows(sourceName, fileFullPath string) (*dto.SchemaRowsDto, error) {
	f, err := excelize.OpenFile(fileFullPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result := &dto.SchemaRowsDto{
		Type:             h.TypeName(),
		Suffix:           "xlsx",
		SourceNameSimple: sourceName,
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return result, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return result, nil
	}

	headers := make([]string, len(rows[0]))
	for i, title := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(title))
	}

	for _, cells := range rows[1:] {
		row := make(map[string]string)
		for i, cell := range cells {
			cell = strings.TrimSpace(cell)
			if i < len(headers) && headers[i] != "" && cell != "" {
				row[headers[i]] = cell
			}
		}
		// 只添加非空行
		if len(row) > 0 {
			result.Rows = append(result.Rows, row)
		}
	}
	return result, nil
}
