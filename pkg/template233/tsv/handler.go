package tsv

import (
	"bufio"
	"os"
	"strings"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
)

// TsvSchemaHandler TSV 结构描述处理器
// 第一行为表头，后续行为数据行，以制表符(\t)分隔
type TsvSchemaHandler struct{}

// TypeName 返回处理器类型名
// 返回值:
//
//	string: "tsv"
func (h *TsvSchemaHandler) TypeName() string {
	return "tsv"
}

// ReadSchemaRows 读取 TSV 结构描述文件
// 参数:
//
//	sourceName: 来源名称
//	fileFullPath: TSV 文件的完整路径
//
// 返回值:
//
//	*dto.SchemaRowsDto: 数据行列表，少于两行时 Rows 为 nil
//	error: 读取失败
func (h *TsvSchemaHandler) ReadSchemaRows(sourceName, fileFullPath string) (*dto.SchemaRowsDto, error) {
	file, err := os.Open(fileFullPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	result := &dto.SchemaRowsDto{
		Type:             h.TypeName(),
		Suffix:           "tsv",
		SourceNameSimple: sourceName,
	}
	if len(lines) < 2 {
		return result, nil
	}

	headers := strings.Split(lines[0], "\t")
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}

	for _, line := range lines[1:] {
		values := strings.Split(line, "\t")
		row := make(map[string]string)
		for i, value := range values {
			if i < len(headers) && headers[i] != "" {
				row[headers[i]] = strings.TrimSpace(value)
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}
