package matcher

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/kljensen/snowball"

	"cv-insight-go/internal/constants"
	"cv-insight-go/internal/types"
)

// 分词模式：连续的字母数字串视为一个词
var tokenRegex = regexp.MustCompile(`[a-zA-Z0-9]+`)

// 默认英文停用词表，可通过选项追加
var defaultStopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "are": {}, "was": {},
	"were": {}, "have": {}, "has": {}, "had": {}, "this": {}, "that": {},
	"from": {}, "will": {}, "would": {}, "should": {}, "could": {},
	"you": {}, "your": {}, "our": {}, "their": {}, "about": {},
	"into": {}, "over": {}, "under": {}, "who": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "not": {},
	"all": {}, "any": {}, "can": {}, "may": {}, "must": {},
	"more": {}, "most": {}, "other": {}, "such": {}, "than": {},
	"then": {}, "them": {}, "they": {}, "these": {}, "those": {},
	"work": {}, "working": {}, "experience": {}, "years": {},
	"ability": {}, "strong": {}, "required": {}, "preferred": {},
	"including": {}, "using": {}, "etc": {}, "per": {},
}

// KeywordMatcher 基于词干重叠的简历/职位描述匹配器。
// 纯内存计算，无共享可变状态，可并发使用。
type KeywordMatcher struct {
	stopwords map[string]struct{}
}

// MatcherOption 匹配器可选配置
type MatcherOption func(*KeywordMatcher)

// WithExtraStopwords 在内置停用词表基础上追加停用词
func WithExtraStopwords(words []string) MatcherOption {
	return func(m *KeywordMatcher) {
		for _, w := range words {
			m.stopwords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
		}
	}
}

// NewKeywordMatcher 创建匹配器
func NewKeywordMatcher(opts ...MatcherOption) *KeywordMatcher {
	m := &KeywordMatcher{
		stopwords: make(map[string]struct{}, len(defaultStopwords)),
	}
	for w := range defaultStopwords {
		m.stopwords[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match 计算简历文本与职位描述的关键词匹配结果。
// 双方文本分词、小写化、去掉过短词，做词干归一并丢弃停用词后
// 取词干集合，得分 = round(100 * |交集| / |职位描述集合|)，
// 上限封顶以避免报告完全匹配。职位描述为空时得分定义为0。
func (m *KeywordMatcher) Match(cvText, jobDescription string) *types.MatchResult {
	result := &types.MatchResult{
		MatchingKeywords: []string{},
		MissingKeywords:  []string{},
		Suggestions:      []string{},
	}

	jdStems := m.stemTokens(jobDescription)
	if len(jdStems) == 0 {
		// 空职位描述：除零情形定义为0分
		result.Suggestions = append(result.Suggestions, suggestionForScore(0))
		return result
	}

	cvSet := make(map[string]struct{})
	for _, stem := range m.stemTokens(cvText) {
		cvSet[stem] = struct{}{}
	}

	matched := 0
	for _, stem := range jdStems {
		if _, ok := cvSet[stem]; ok {
			matched++
			result.MatchingKeywords = append(result.MatchingKeywords, stem)
			continue
		}
		// 缺失关键词：跳过过短词干，按发现顺序取前若干个
		if len(stem) > 2 && len(result.MissingKeywords) < constants.MaxMissingKeywords {
			result.MissingKeywords = append(result.MissingKeywords, stem)
		}
	}

	score := int(math.Round(100 * float64(matched) / float64(len(jdStems))))
	if score > constants.MaxMatchScore {
		score = constants.MaxMatchScore
	}
	result.MatchScore = score

	result.Suggestions = append(result.Suggestions, suggestionForScore(score))
	if len(result.MissingKeywords) > 0 {
		limit := len(result.MissingKeywords)
		if limit > 5 {
			limit = 5
		}
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("Consider adding these keywords from the job description: %s",
				strings.Join(result.MissingKeywords[:limit], ", ")))
	}

	return result
}

// 分词+词干归一，返回按首次出现顺序去重的词干列表
func (m *KeywordMatcher) stemTokens(text string) []string {
	var stems []string
	seen := make(map[string]struct{})

	for _, token := range tokenRegex.FindAllString(text, -1) {
		token = strings.ToLower(token)
		if len(token) <= 2 {
			continue
		}
		if _, stop := m.stopwords[token]; stop {
			continue
		}

		stem, err := snowball.Stem(token, "english", false)
		if err != nil || stem == "" {
			stem = token
		}
		if _, stop := m.stopwords[stem]; stop {
			continue
		}
		if _, dup := seen[stem]; dup {
			continue
		}
		seen[stem] = struct{}{}
		stems = append(stems, stem)
	}

	return stems
}

// 按得分区间给出固定模板的建议文案
func suggestionForScore(score int) string {
	switch {
	case score < 30:
		return "Low keyword overlap with this job description. Tailor your resume to highlight the skills the role asks for."
	case score < 60:
		return "Good foundation. Adding a few more role-specific keywords would strengthen the match."
	default:
		return "Excellent alignment with the job description."
	}
}
