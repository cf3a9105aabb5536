// Package fieldexpr 解析「需要生成数据的字段」输入
//
// 语法:
//
//	input := { sep | entry | junk }
//	entry := IDENT [ ':' LIST ]
//	IDENT := [A-Za-z0-9_-]+
//	LIST  := '[' 除 ']' 之外的任意字符 ']'
//
// 例如 `Phone: [909090, 6788489], Fax, dp-Country: [India], dp-State: [Goa]`
//
// 以 dp- 开头的字段为依赖选择列表，括号内容整体作为唯一的取值；
// 字段出现的先后顺序即依赖链顺序。
package fieldexpr

import (
	"strings"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
)

// Parse 解析字段表达式
// 纯函数；无法识别的片段静默跳过
// 参数:
//
//	text: 操作员输入的原始文本
//
// 返回值:
//
//	*dto.FieldConsiderMap: 字段名（小写）到候选值的有序映射，空输入返回空映射
func Parse(text string) *dto.FieldConsiderMap {
	result := dto.NewFieldConsiderMap()
	tokens := lex(text)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.kind != tokIdent {
			// 没有字段名的冒号或括号组直接丢弃
			continue
		}
		key := strings.ToLower(tok.text)

		if i+1 < len(tokens) && tokens[i+1].kind == tokColon {
			if i+2 < len(tokens) {
				switch tokens[i+2].kind {
				case tokList:
					result.Set(key, listValues(key, tokens[i+2].text))
					i += 2
					continue
				case tokBadList:
					return result
				}
			}
			i++
		}
		result.Set(key, nil)
	}
	return result
}

func listValues(key, raw string) []string {
	if dto.IsDependent(key) {
		v := strings.TrimSpace(raw)
		if v == "" {
			return nil
		}
		return []string{v}
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		v := unquote(strings.TrimSpace(part))
		if v == "" {
			continue
		}
		values = append(values, v)
	}
	return values
}

// unquote 依次去掉首尾的单引号和双引号
func unquote(v string) string {
	for _, q := range []string{"'", `"`} {
		v = strings.TrimPrefix(v, q)
		v = strings.TrimSuffix(v, q)
	}
	return v
}
