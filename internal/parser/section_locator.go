package parser

import (
	"regexp"
	"strings"
)

// 章节定位相关的常量
const (
	// 标题行的最大长度，超过该长度的行视为正文而非标题
	headerLineMaxLen = 50
)

// 已知章节标题词表，命中即认为下一章节开始
var sectionHeaderVocab = map[string]struct{}{
	"personal":       {},
	"contact":        {},
	"summary":        {},
	"objective":      {},
	"profile":        {},
	"experience":     {},
	"work":           {},
	"employment":     {},
	"education":      {},
	"skills":         {},
	"technical":      {},
	"certifications": {},
	"projects":       {},
	"awards":         {},
	"languages":      {},
	"interests":      {},
	"hobbies":        {},
	"publications":   {},
	"volunteer":      {},
}

// 证明人/推荐人章节的标题，该章节永远是终止章节
var referenceHeaderRegex = regexp.MustCompile(`^(references?|referees?):?$`)

// LocateSection 在全文中定位指定章节的正文。
// headerAliases 是按优先级排列的章节标题别名列表（例如
// ["experience", "work experience", "employment"]），只使用第一个命中的别名。
// 未找到任何别名时返回空字符串。
func LocateSection(fullText string, headerAliases []string) string {
	lines := strings.Split(fullText, "\n")

	for _, alias := range headerAliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" {
			continue
		}

		for i, rawLine := range lines {
			line := strings.TrimSpace(rawLine)
			if !matchesHeaderAlias(line, alias) {
				continue
			}

			// 命中标题行，从下一行开始累积正文
			var body []string
			for _, rawBody := range lines[i+1:] {
				bodyLine := strings.TrimSpace(rawBody)

				// 证明人章节开始，当前章节立即结束
				if IsReferenceTerminator(bodyLine) {
					break
				}
				// 下一个已知章节的标题行，停止累积
				if isSectionHeaderLine(bodyLine) {
					break
				}
				body = append(body, rawBody)
			}
			return strings.Join(body, "\n")
		}
	}

	return ""
}

// 判断一行是否命中章节标题别名
func matchesHeaderAlias(line, alias string) bool {
	lower := strings.ToLower(line)
	if lower == alias {
		return true
	}
	if strings.HasPrefix(lower, alias+":") || strings.HasPrefix(lower, alias+" ") {
		return true
	}
	// 短行中包含别名也视为标题，长行视为正文
	if len(line) < headerLineMaxLen && strings.Contains(lower, alias) {
		return true
	}
	return false
}

// IsReferenceTerminator 判断一行是否属于证明人章节的开头。
// 简历中"References available upon request"之类的尾部内容
// 不允许混入前面章节的提取结果，所有逐行扫描的提取器共用该规则。
func IsReferenceTerminator(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	if lower == "" {
		return false
	}
	if referenceHeaderRegex.MatchString(lower) {
		return true
	}
	if strings.Contains(lower, "available upon request") || strings.Contains(lower, "references available") {
		return true
	}
	return false
}

// 判断一行是否是已知章节词表中的标题行
func isSectionHeaderLine(line string) bool {
	if line == "" || len(line) >= headerLineMaxLen {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(line))
	lower = strings.TrimSuffix(lower, ":")
	_, ok := sectionHeaderVocab[lower]
	return ok
}
