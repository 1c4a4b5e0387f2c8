package parser

import (
	"regexp"
	"strings"

	"cv-insight-go/internal/types"
)

// 触发行剥离日期后残留的首尾分隔符
var danglingSepRegex = regexp.MustCompile(`^[\s,|@\-–—()]+|[\s,|@\-–—()]+$`)

// 逐行状态机的中间状态：正在构建中的一条工作经历
type jobBuilder struct {
	title     string
	company   string
	duration  string
	descLines []string
}

// ExtractExperience 对工作经历章节正文运行逐行状态机，
// 提取最多 maxEntries 条工作经历。
//
// 含日期区间或形似职位名的行开启一条新经历；触发行剥离日期后
// 按 |、@ 或逗号拆出职位和公司；随后向下看1-2行补齐缺失的公司
// 和日期；其余行累积为该条经历的描述。
func ExtractExperience(sectionBody string, maxEntries int) []types.ExperienceEntry {
	lines := strings.Split(sectionBody, "\n")
	entries := make([]types.ExperienceEntry, 0, maxEntries)
	var current *jobBuilder

	finalize := func() bool {
		if current == nil || len(entries) >= maxEntries {
			current = nil
			return len(entries) < maxEntries
		}
		entries = append(entries, types.ExperienceEntry{
			Title:       current.title,
			Company:     current.company,
			Duration:    current.duration,
			Description: strings.Join(current.descLines, " "),
		})
		current = nil
		return len(entries) < maxEntries
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		// 证明人章节开始，整个扫描结束
		if IsReferenceTerminator(line) {
			break
		}

		duration := ExtractDuration(line)
		if duration == "" && !looksLikeJobTitle(line) {
			// 描述行，累积到当前经历
			if current != nil {
				current.descLines = append(current.descLines, stripBullet(line))
			}
			continue
		}

		// 新经历开始，先结算上一条
		if !finalize() {
			return entries
		}
		current = &jobBuilder{}

		if duration != "" {
			current.duration = duration
			remainder := trimDanglingSeparators(strings.Replace(line, duration, "", 1))
			current.title, current.company = splitTitleCompany(remainder)
		} else {
			current.title = line
		}

		// 向下看1-2行补齐缺失字段
		i = lookAheadForJobFields(lines, i, current)
	}

	finalize()
	return entries
}

// 向下检查触发行之后的1-2行，补齐缺失的公司和日期，返回新的行下标。
// 被消费的行不再参与主循环扫描。
func lookAheadForJobFields(lines []string, i int, job *jobBuilder) int {
	if i+1 >= len(lines) {
		return i
	}
	next := strings.TrimSpace(lines[i+1])
	if next == "" || IsReferenceTerminator(next) {
		return i
	}

	if d := ExtractDuration(next); d != "" && job.duration == "" {
		job.duration = d
		remainder := trimDanglingSeparators(strings.Replace(next, d, "", 1))
		if job.company == "" && remainder != "" {
			job.company = remainder
		}
		return i + 1
	}

	if job.company == "" && len(next) < 100 && !isBulletLine(next) {
		job.company = next
		i++
		// 公司行的下一行可能携带仍然缺失的日期
		if job.duration == "" && i+1 < len(lines) {
			after := strings.TrimSpace(lines[i+1])
			if d := ExtractDuration(after); d != "" {
				job.duration = d
				i++
			}
		}
	}
	return i
}

// 判断一行是否形似职位名: 长度5-99、不是项目符号行、不以句号结尾。
// 句号结尾的行几乎总是描述句而非职位名。
func looksLikeJobTitle(line string) bool {
	if len(line) < 5 || len(line) > 99 {
		return false
	}
	if isBulletLine(line) {
		return false
	}
	if strings.HasSuffix(line, ".") {
		return false
	}
	return true
}

// 判断一行是否以项目符号开头
func isBulletLine(line string) bool {
	return bulletPrefixRegex.MatchString(line)
}

// 剥离一行开头的项目符号
func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefixRegex.ReplaceAllString(line, ""))
}

// 剥离首尾残留的分隔符
func trimDanglingSeparators(s string) string {
	return strings.TrimSpace(danglingSepRegex.ReplaceAllString(s, ""))
}

// 按 |、@ 或逗号后跟大写字母拆分职位和公司
func splitTitleCompany(s string) (title, company string) {
	if s == "" {
		return "", ""
	}
	parts := splitOnTitleSeparators(s)
	title = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		company = strings.TrimSpace(parts[1])
	}
	return title, company
}

// Go的regexp不支持lookahead，逗号+大写字母的拆分手工处理
func splitOnTitleSeparators(s string) []string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '|', '@':
			return []string{s[:i], s[i+1:]}
		case ',':
			rest := strings.TrimLeft(s[i+1:], " ")
			if rest != "" && rest[0] >= 'A' && rest[0] <= 'Z' {
				return []string{s[:i], rest}
			}
		}
	}
	return []string{s}
}
