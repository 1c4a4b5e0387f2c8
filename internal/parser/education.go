package parser

import (
	"regexp"
	"strings"

	"cv-insight-go/internal/types"
)

// 4位年份(1900-2099)识别模式
var yearRegex = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ExtractEducation 对教育经历章节正文运行逐行状态机，
// 提取最多 maxEntries 条教育经历。结构与工作经历状态机对称但更简单：
// 形似学位名的行开启新条目，行内4位年份抽出后按 |、@ 或逗号拆分
// 学位和学校，随后向下看补齐缺失的学校和年份。教育经历不收集描述。
func ExtractEducation(sectionBody string, maxEntries int) []types.EducationEntry {
	lines := strings.Split(sectionBody, "\n")
	entries := make([]types.EducationEntry, 0, maxEntries)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if IsReferenceTerminator(line) {
			break
		}
		if !looksLikeDegree(line) {
			continue
		}
		if len(entries) >= maxEntries {
			break
		}

		entry := types.EducationEntry{}
		if year := yearRegex.FindString(line); year != "" {
			entry.Year = year
			remainder := trimDanglingSeparators(strings.Replace(line, year, "", 1))
			entry.Degree, entry.Institution = splitTitleCompany(remainder)
		} else {
			entry.Degree, entry.Institution = splitTitleCompany(line)
		}

		i = lookAheadForEducationFields(lines, i, &entry)
		entries = append(entries, entry)
	}

	return entries
}

// 向下检查学位行之后的行，补齐缺失的学校和年份，返回新的行下标
func lookAheadForEducationFields(lines []string, i int, entry *types.EducationEntry) int {
	if i+1 >= len(lines) {
		return i
	}
	next := strings.TrimSpace(lines[i+1])
	if next == "" || IsReferenceTerminator(next) || isBulletLine(next) {
		return i
	}

	if year := yearRegex.FindString(next); year != "" && entry.Year == "" {
		entry.Year = year
		remainder := trimDanglingSeparators(strings.Replace(next, year, "", 1))
		if entry.Institution == "" && remainder != "" {
			entry.Institution = remainder
		}
		return i + 1
	}

	if entry.Institution == "" && len(next) < 100 {
		entry.Institution = next
		i++
		// 学校行的下一行可能携带仍然缺失的年份
		if entry.Year == "" && i+1 < len(lines) {
			after := strings.TrimSpace(lines[i+1])
			if year := yearRegex.FindString(after); year != "" {
				entry.Year = year
				i++
			}
		}
	}
	return i
}

// 判断一行是否形似学位名: 长度大于5且不是项目符号行
func looksLikeDegree(line string) bool {
	return len(line) > 5 && !isBulletLine(line)
}
