package parser

import (
	"regexp"
	"strings"
)

// 技能提取相关的模式和词表
var (
	bulletPrefixRegex = regexp.MustCompile(`^([-–—•*▪·]\s*|o\s+)`)
	skillLabelRegex   = regexp.MustCompile(`(?i)^(skills|technologies|tools)\s*:\s*`)
	skillSplitRegex   = regexp.MustCompile(`[,;|•]`)

	// 技能片段中丢弃的填充词
	skillStopwords = map[string]struct{}{
		"and": {}, "or": {}, "the": {}, "with": {}, "using": {},
		"including": {}, "available": {}, "upon": {}, "request": {}, "referees": {},
	}

	// 命中即停止技能扫描的非技能章节标题
	nonSkillSectionRegex = regexp.MustCompile(`(?i)^(interests|hobbies|publications|volunteer|awards|certifications)\b`)
)

// ExtractSkills 从技能章节正文中提取技能列表。
// 逐行剥离项目符号和"skills:"之类的前缀标签后按分隔符拆分，
// 去重并保留首次出现顺序，数量上限由 maxSkills 控制。
func ExtractSkills(sectionBody string, maxSkills int) []string {
	skills := make([]string, 0, maxSkills)
	seen := make(map[string]struct{})

	for _, rawLine := range strings.Split(sectionBody, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		if IsReferenceTerminator(line) {
			break
		}
		if nonSkillSectionRegex.MatchString(line) {
			break
		}

		line = bulletPrefixRegex.ReplaceAllString(line, "")
		line = skillLabelRegex.ReplaceAllString(line, "")

		for _, fragment := range skillSplitRegex.Split(line, -1) {
			skill := strings.TrimSpace(fragment)
			if len(skill) <= 1 || len(skill) >= 60 {
				continue
			}
			if _, isStopword := skillStopwords[strings.ToLower(skill)]; isStopword {
				continue
			}
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			skills = append(skills, skill)
			if len(skills) >= maxSkills {
				return skills
			}
		}
	}

	return skills
}
