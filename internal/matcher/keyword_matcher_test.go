package matcher

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatchPartialOverlap 验证部分重叠时的得分和缺失关键词
func TestMatchPartialOverlap(t *testing.T) {
	m := NewKeywordMatcher()

	result := m.Match("I know Python quite well", "Python SQL Docker")
	require.NotNil(t, result)

	// 1/3 重叠
	assert.Equal(t, 33, result.MatchScore, "1/3重叠应得33分")
	assert.Equal(t, []string{"python"}, result.MatchingKeywords)
	assert.Contains(t, result.MissingKeywords, "sql")
	assert.Contains(t, result.MissingKeywords, "docker")
	assert.NotEmpty(t, result.Suggestions)
}

// TestMatchEmptyJobDescription 验证空职位描述定义为0分而非除零
func TestMatchEmptyJobDescription(t *testing.T) {
	m := NewKeywordMatcher()

	for _, jd := range []string{"", "   ", "the and with"} {
		result := m.Match("Python SQL", jd)
		require.NotNil(t, result)
		assert.Equal(t, 0, result.MatchScore, "职位描述 %q 应得0分", jd)
		assert.Empty(t, result.MatchingKeywords)
		assert.Empty(t, result.MissingKeywords)
	}
}

// TestMatchScoreCap 验证完全重叠时得分封顶，不报告100%
func TestMatchScoreCap(t *testing.T) {
	m := NewKeywordMatcher()
	text := "Python Docker Kubernetes Terraform"

	result := m.Match(text, text)

	assert.Equal(t, 95, result.MatchScore, "完全重叠也不应报告100分")
	assert.Empty(t, result.MissingKeywords)
}

// TestMatchStemming 验证词形变化通过词干归一后能够匹配
func TestMatchStemming(t *testing.T) {
	m := NewKeywordMatcher()

	result := m.Match("Managed distributed deployments", "managing deployment management")

	// "managed"/"managing"/"management" 与 "deployments"/"deployment" 各归一为同一词干
	assert.Equal(t, 95, result.MatchScore)
	assert.Empty(t, result.MissingKeywords)
}

// TestMatchMissingKeywordsCap 验证缺失关键词数量上限和发现顺序
func TestMatchMissingKeywordsCap(t *testing.T) {
	m := NewKeywordMatcher()

	var words []string
	for i := 0; i < 15; i++ {
		words = append(words, fmt.Sprintf("keyword%02d", i))
	}
	result := m.Match("nothing relevant here", strings.Join(words, " "))

	assert.Len(t, result.MissingKeywords, 10, "缺失关键词最多10个")
	assert.Equal(t, "keyword00", result.MissingKeywords[0], "应按发现顺序保留")
}

// TestMatchDropsShortAndStopwords 验证过短词和停用词不参与匹配
func TestMatchDropsShortAndStopwords(t *testing.T) {
	m := NewKeywordMatcher()

	result := m.Match("go is ok", "go to the db")

	// "go"/"to"/"is"/"ok"/"db" 全部过短, "the" 是停用词
	assert.Equal(t, 0, result.MatchScore)
	assert.Empty(t, result.MissingKeywords)
}

// TestMatchExtraStopwords 验证追加停用词生效
func TestMatchExtraStopwords(t *testing.T) {
	m := NewKeywordMatcher(WithExtraStopwords([]string{"synergy"}))

	result := m.Match("Python", "synergy Python")

	assert.Equal(t, 95, result.MatchScore, "追加停用词后职位描述只剩python一个词干")
}

// TestMatchSuggestionBuckets 验证按得分区间选择建议文案
func TestMatchSuggestionBuckets(t *testing.T) {
	m := NewKeywordMatcher()

	low := m.Match("unrelated text entirely", "Python SQL Docker Kubernetes Terraform")
	require.NotEmpty(t, low.Suggestions)
	assert.Contains(t, low.Suggestions[0], "Low keyword overlap")

	high := m.Match("Python SQL Docker", "Python SQL Docker")
	require.NotEmpty(t, high.Suggestions)
	assert.Contains(t, high.Suggestions[0], "Excellent alignment")
}
