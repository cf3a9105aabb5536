package json

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
)

// JsonSchemaHandler JSON 结构描述处理器
// 文件内容为对象数组，如 [{"object": "lead", "field": "email", "type": "email"}]
type JsonSchemaHandler struct{}

// TypeName 返回处理器类型名
// 返回值:
//
//	string: "json"
func (h *JsonSchemaHandler) TypeName() string {
	return "json"
}

// ReadSchemaRows 读取 JSON 结构描述文件
// 非字符串的值按 fmt 默认格式转为字符串，列名转为小写
// 参数:
//
//	sourceName: 来源名称
//	fileFullPath: JSON 文件的完整路径
//
// 返回值:
//
//	*dto.SchemaRowsDto: 数据行列表，空文件时 Rows 为 nil
//	error: 读取或解析失败
func (h *JsonSchemaHandler) ReadSchemaRows(sourceName, fileFullPath string) (*dto.SchemaRowsDto, error) {
	data, err := os.ReadFile(fileFullPath)
	if err != nil {
		return nil, err
	}

	result := &dto.SchemaRowsDto{
		Type:             h.TypeName(),
		Suffix:           "json",
		SourceNameSimple: sourceName,
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return result, nil
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", fileFullPath, err)
	}

	for _, item := range items {
		row := make(map[string]string, len(item))
		for k, v := range item {
			if v == nil {
				continue
			}
			if s, ok := v.(string); ok {
				row[strings.ToLower(k)] = s
			} else {
				row[strings.ToLower(k)] = fmt.Sprintf("%v", v)
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}
