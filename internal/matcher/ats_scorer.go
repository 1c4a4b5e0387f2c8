package matcher

import (
	"strings"

	"cv-insight-go/internal/constants"
	"cv-insight-go/internal/parser"
)

// ATS行业关键词表，命中一个加5分，可通过选项追加
var defaultBuzzwords = []string{
	"leadership", "management", "agile", "scrum", "cloud",
	"machine learning", "data analysis", "project management",
	"communication", "teamwork", "problem solving", "python",
	"java", "sql", "javascript", "devops", "security",
	"testing", "automation", "analytics",
}

// ATS加分规则的分值
const (
	sectionPoints     = 10 // 联系方式和核心章节词各加10分
	buzzwordPoints    = 5  // 每个行业关键词加5分
	buzzwordPointsCap = 40 // 行业关键词总加分上限
)

// ATSScorer 与职位描述无关的通用ATS可读性评分器。
// 奖励联系方式和标准章节关键词的出现，分值范围0-90。
type ATSScorer struct {
	buzzwords []string
}

// ATSScorerOption 评分器可选配置
type ATSScorerOption func(*ATSScorer)

// WithExtraBuzzwords 在内置关键词表基础上追加行业关键词
func WithExtraBuzzwords(words []string) ATSScorerOption {
	return func(s *ATSScorer) {
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				s.buzzwords = append(s.buzzwords, w)
			}
		}
	}
}

// NewATSScorer 创建评分器
func NewATSScorer(opts ...ATSScorerOption) *ATSScorer {
	s := &ATSScorer{
		buzzwords: append([]string(nil), defaultBuzzwords...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score 计算简历文本的通用ATS得分
func (s *ATSScorer) Score(cvText string) int {
	lower := strings.ToLower(cvText)
	score := 0

	if strings.Contains(lower, "email") || strings.Contains(lower, "@") {
		score += sectionPoints
	}
	if parser.ExtractPhone(cvText) != "" {
		score += sectionPoints
	}
	for _, keyword := range []string{"experience", "education", "skills"} {
		if strings.Contains(lower, keyword) {
			score += sectionPoints
		}
	}

	buzzScore := 0
	for _, buzzword := range s.buzzwords {
		if strings.Contains(lower, buzzword) {
			buzzScore += buzzwordPoints
		}
	}
	if buzzScore > buzzwordPointsCap {
		buzzScore = buzzwordPointsCap
	}
	score += buzzScore

	if score > constants.MaxATSScore {
		score = constants.MaxATSScore
	}
	return score
}
