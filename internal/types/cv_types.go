package types

// PersonalInfo 联系信息，所有字段都是尽力提取的字符串
// 缺失用空字符串表示，绝不为null，下游格式化可以统一替换占位符
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
}

// ExperienceEntry 工作经历条目
type ExperienceEntry struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	// Duration 原样保留匹配到的日期区间子串，例如 "Jan 2020 - Present"
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry 教育经历条目
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	// Year 4位年份字符串，未找到则为空
	Year string `json:"year"`
}

// CVRecord 解析流水线的结构化输出
// 每次上传请求都新建一份，构造后不再修改，也不做持久化之外的共享
type CVRecord struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Skills       []string          `json:"skills"`
	Education    []EducationEntry  `json:"education"`
}

// NewEmptyCVRecord 返回所有数组字段已初始化的空记录
// 保证序列化后数组字段是 [] 而不是 null
func NewEmptyCVRecord() *CVRecord {
	return &CVRecord{
		Experience: []ExperienceEntry{},
		Skills:     []string{},
		Education:  []EducationEntry{},
	}
}

// MatchResult 简历与JD的关键词匹配结果
type MatchResult struct {
	// MatchScore 0-100的整数，实现上限制在95以内
	MatchScore       int      `json:"matchScore"`
	MatchingKeywords []string `json:"matchingKeywords"`
	MissingKeywords  []string `json:"missingKeywords"`
	Suggestions      []string `json:"suggestions"`
}

// InsightType 洞察类型
type InsightType string

const (
	// InsightWarning 警告
	InsightWarning InsightType = "warning"
	// InsightSuggestion 建议
	InsightSuggestion InsightType = "suggestion"
	// InsightCritical 严重问题
	InsightCritical InsightType = "critical"
	// InsightImprovement 改进点
	InsightImprovement InsightType = "improvement"
)

// Insight 面向用户的单条洞察
type Insight struct {
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
}

// AnalysisResult 一次完整分析的聚合结果
// Match 仅在提供了JD时出现；否则给出通用ATS分数
type AnalysisResult struct {
	CV           *CVRecord    `json:"cv"`
	Match        *MatchResult `json:"match,omitempty"`
	ATSScore     int          `json:"atsScore"`
	Suggestions  []string     `json:"suggestions"`
	Insights     []Insight    `json:"insights"`
	Completeness int          `json:"completeness"`
}
