package utils

import (
	"strings"

	"github.com/goccy/go-json"
)

// ParseListField 宽松解析序列化的列表字段，例如 ['a', 'b'] 或 ["a","b"]
// 任何格式问题都返回空列表，不返回错误
func ParseListField(raw string) []string {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return []string{}
	}

	var items []string
	if json.Unmarshal([]byte(s), &items) == nil && items != nil {
		return items
	}

	items, ok := parseLiteralList(s[1 : len(s)-1])
	if !ok {
		return []string{}
	}
	return items
}

// parseLiteralList 解析方括号内部: 'a', "b" 形式的字符串列表，允许末尾逗号
func parseLiteralList(body string) ([]string, bool) {
	items := []string{}
	i, n := 0, len(body)
	for {
		for i < n && isSpace(body[i]) {
			i++
		}
		if i == n {
			return items, true
		}
		quote := body[i]
		if quote != '\'' && quote != '"' {
			return nil, false
		}
		i++

		var sb strings.Builder
		closed := false
		for i < n {
			c := body[i]
			if c == '\\' && i+1 < n {
				sb.WriteByte(unescape(body[i+1]))
				i += 2
				continue
			}
			if c == quote {
				closed = true
				i++
				break
			}
			sb.WriteByte(c)
			i++
		}
		if !closed {
			return nil, false
		}
		items = append(items, sb.String())

		for i < n && isSpace(body[i]) {
			i++
		}
		if i == n {
			return items, true
		}
		if body[i] != ',' {
			return nil, false
		}
		i++
	}
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// FormatListField 列表序列化为字面量形式 ['a', 'b']，与 ParseListField 互逆
func FormatListField(items []string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		quote := byte('\'')
		if strings.ContainsRune(item, '\'') && !strings.ContainsRune(item, '"') {
			quote = '"'
		}
		sb.WriteByte(quote)
		for j := 0; j < len(item); j++ {
			c := item[j]
			switch c {
			case '\\':
				sb.WriteString(`\\`)
			case '\n':
				sb.WriteString(`\n`)
			case '\t':
				sb.WriteString(`\t`)
			case '\r':
				sb.WriteString(`\r`)
			case quote:
				sb.WriteByte('\\')
				sb.WriteByte(c)
			default:
				sb.WriteByte(c)
			}
		}
		sb.WriteByte(quote)
	}
	sb.WriteByte(']')
	return sb.String()
}
