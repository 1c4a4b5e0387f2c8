package parser

import (
	"strings"

	"cv-insight-go/internal/constants"
	"cv-insight-go/internal/types"
)

// 各目标章节按优先级排列的标题别名
var (
	summaryAliases    = []string{"summary", "objective", "profile", "about"}
	experienceAliases = []string{"experience", "work experience", "employment", "professional experience", "work history"}
	educationAliases  = []string{"education", "academic", "qualifications"}
	skillsAliases     = []string{"skills", "technical skills", "technologies", "core competencies"}
)

// CVParser 将原始简历文本解析为结构化记录。
// 所有提取均为内存中字符串上的纯函数，无共享可变状态，
// 并发调用之间互不干扰。
type CVParser struct {
	maxExperienceEntries int
	maxEducationEntries  int
	maxSkills            int
}

// CVParserOption 解析器可选配置
type CVParserOption func(*CVParser)

// WithExperienceCap 覆盖工作经历条目上限
func WithExperienceCap(n int) CVParserOption {
	return func(p *CVParser) {
		if n > 0 {
			p.maxExperienceEntries = n
		}
	}
}

// WithEducationCap 覆盖教育经历条目上限
func WithEducationCap(n int) CVParserOption {
	return func(p *CVParser) {
		if n > 0 {
			p.maxEducationEntries = n
		}
	}
}

// WithSkillsCap 覆盖技能条目上限
func WithSkillsCap(n int) CVParserOption {
	return func(p *CVParser) {
		if n > 0 {
			p.maxSkills = n
		}
	}
}

// NewCVParser 创建解析器，未指定选项时使用默认上限
func NewCVParser(opts ...CVParserOption) *CVParser {
	p := &CVParser{
		maxExperienceEntries: constants.MaxExperienceEntries,
		maxEducationEntries:  constants.MaxEducationEntries,
		maxSkills:            constants.MaxSkills,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse 将原始文本解析为CVRecord。
// 空文本或纯空白文本返回各字段为空的完整记录而非错误，
// 任何提取器未命中都以空值表示，不产生错误。
func (p *CVParser) Parse(text string) *types.CVRecord {
	record := types.NewEmptyCVRecord()
	if strings.TrimSpace(text) == "" {
		return record
	}

	record.PersonalInfo.Name = ExtractName(text)
	record.PersonalInfo.Email = ExtractEmail(text)
	record.PersonalInfo.Phone = ExtractPhone(text)
	record.PersonalInfo.LinkedIn = ExtractLinkedIn(text)

	record.Summary = extractSummary(text)

	if body := LocateSection(text, experienceAliases); body != "" {
		record.Experience = ExtractExperience(body, p.maxExperienceEntries)
	}
	if body := LocateSection(text, educationAliases); body != "" {
		record.Education = ExtractEducation(body, p.maxEducationEntries)
	}
	if body := LocateSection(text, skillsAliases); body != "" {
		record.Skills = ExtractSkills(body, p.maxSkills)
	}

	return record
}

// 提取个人总结：总结章节的全部非空行用空格连接成一个字符串，
// 保留多行总结的完整内容而不只取首行
func extractSummary(text string) string {
	body := LocateSection(text, summaryAliases)
	if body == "" {
		return ""
	}

	var parts []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if IsReferenceTerminator(line) {
			break
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}
