package fieldexpr

type tokenKind int

const (
	tokIdent   tokenKind = iota // 字段名 [A-Za-z0-9_-]+
	tokColon                    // ':'
	tokList                     // '[' ... ']'，text 为括号内原文
	tokBadList                  // 未闭合的 '['，吞掉剩余输入
)

type token struct {
	kind tokenKind
	text string
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// lex 把输入切分为记号
// 语法之外的字符（空白、逗号、其他符号）直接跳过
func lex(input string) []token {
	var tokens []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case isIdentByte(c):
			start := i
			for i < len(input) && isIdentByte(input[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, text: input[start:i]})
		case c == ':':
			tokens = append(tokens, token{kind: tokColon})
			i++
		case c == '[':
			end := i + 1
			for end < len(input) && input[end] != ']' {
				end++
			}
			if end >= len(input) {
				tokens = append(tokens, token{kind: tokBadList, text: input[i+1:]})
				return tokens
			}
			tokens = append(tokens, token{kind: tokList, text: input[i+1 : end]})
			i = end + 1
		default:
			i++
		}
	}
	return tokens
}
