package parser

import (
	"regexp"
	"strings"
)

// 联系方式识别模式
var (
	emailRegex    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w{2,}`)
	phoneRegex    = regexp.MustCompile(`\+?[0-9][0-9\s().\-]{8,}[0-9]`)
	linkedinRegex = regexp.MustCompile(`(https?://)?(www\.)?linkedin\.com/in/[\w-]+`)
	digitRegex    = regexp.MustCompile(`[0-9]`)
)

// ExtractEmail 提取第一个邮箱地址，未找到返回空字符串
func ExtractEmail(text string) string {
	return emailRegex.FindString(text)
}

// ExtractPhone 提取第一个等效位数不少于10位的电话号码。
// 模式刻意宽松，日期区间等内容可能被误匹配，调用方需要容忍误报。
func ExtractPhone(text string) string {
	for _, candidate := range phoneRegex.FindAllString(text, -1) {
		digits := digitRegex.FindAllString(candidate, -1)
		if len(digits) >= 10 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// ExtractLinkedIn 提取第一个LinkedIn个人主页URL
func ExtractLinkedIn(text string) string {
	return linkedinRegex.FindString(text)
}

// ExtractName 取全文第一个非空行作为姓名。
// 刻意采用的粗糙启发式，不做人名实体识别。
func ExtractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
