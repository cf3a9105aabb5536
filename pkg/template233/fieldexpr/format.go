package fieldexpr

import (
	"strings"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
)

// Format 把字段映射写回表达式文本
// 满足 Parse(Format(Parse(x))) 与 Parse(x) 相同
func Format(fields *dto.FieldConsiderMap) string {
	var b strings.Builder
	for i, key := range fields.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(key)

		values, _ := fields.Get(key)
		if len(values) == 0 {
			continue
		}
		b.WriteString(": [")
		if dto.IsDependent(key) {
			b.WriteString(values[0])
		} else {
			for j, v := range values {
				if j > 0 {
					b.WriteString(", ")
				}
				b.WriteString(`"` + v + `"`)
			}
		}
		b.WriteString("]")
	}
	return b.String()
}
