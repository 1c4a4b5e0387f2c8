package tracing

import "strings"

const (
	// DefaultMaxLength span属性值的默认长度上限
	DefaultMaxLength = 200
)

// 简历域里属性名命中这些关键词时值会被掩码而不是截断,
// 避免联系方式等个人信息落进追踪后端
var piiKeywords = []string{
	"email", "phone", "name", "address", "linkedin",
	"姓名", "地址", "password", "secret", "token",
}

// SafeAttributeValue 处理写进span的属性值:
// 名称命中PII关键词时掩码, 否则只做长度截断
func SafeAttributeValue(name, value string, maxLength int) string {
	lowerName := strings.ToLower(name)
	for _, keyword := range piiKeywords {
		if strings.Contains(lowerName, keyword) {
			return MaskPII(value)
		}
	}
	return TruncateString(value, maxLength)
}

// MaskPII 掩码个人信息, 只保留首尾少量字符。
// 按rune处理, 中文姓名同样适用。
func MaskPII(value string) string {
	runes := []rune(value)
	switch n := len(runes); {
	case n == 0:
		return ""
	case n == 1:
		return "*"
	case n == 2:
		return string(runes[:1]) + "*"
	case n <= 4:
		return string(runes[:1]) + strings.Repeat("*", n-2) + string(runes[n-1:])
	default:
		return string(runes[:2]) + strings.Repeat("*", n-4) + string(runes[n-2:])
	}
}

// TruncateString 截断超长字符串, 保留首尾并用省略号连接
func TruncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}

	half := (maxLength - 3) / 2
	if half < 1 {
		half = 1
	}
	return string(runes[:half]) + "..." + string(runes[len(runes)-half:])
}
