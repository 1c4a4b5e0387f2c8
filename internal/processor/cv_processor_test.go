package processor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com
(555) 123-4567

Summary
Backend engineer with five years of Go and Python experience.

Experience
Senior Software Engineer | Acme Corp
Jan 2020 - Present
- Built payment services in Go

Education
Bachelor of Science in Computer Science
State University, 2015

Skills
Go, Python, Docker, Kubernetes, MySQL`

func TestAnalyzeWithoutJobDescription(t *testing.T) {
	// 1. 创建默认处理器
	p := NewCVProcessor(nil, nil)

	// 2. 不带JD分析
	result, err := p.Analyze(context.Background(), "test-uuid", sampleResume, "")
	require.NoError(t, err, "无JD分析不应失败")
	require.NotNil(t, result)

	// 3. 验证结果结构
	assert.Nil(t, result.Match, "无JD时不应有匹配结果")
	assert.NotNil(t, result.CV, "CVRecord不应为nil")
	assert.Equal(t, "jane.doe@example.com", result.CV.PersonalInfo.Email)
	assert.Greater(t, result.ATSScore, 0, "ATS分数应大于0")
	assert.Greater(t, result.Completeness, 0, "完整度分数应大于0")
	assert.NotNil(t, result.Suggestions, "建议列表应始终非nil")
}

func TestAnalyzeWithJobDescription(t *testing.T) {
	p := NewCVProcessor(nil, nil)

	jd := "Looking for a Go engineer with Docker and Kubernetes experience"
	result, err := p.Analyze(context.Background(), "test-uuid", sampleResume, jd)
	require.NoError(t, err)
	require.NotNil(t, result.Match, "有JD时应有匹配结果")

	assert.Greater(t, result.Match.MatchScore, 0, "样例简历与JD应有重叠关键词")
	assert.Equal(t, result.Match.Suggestions, result.Suggestions, "有JD时建议应来自匹配结果")
}

func TestAnalyzeOversizeInput(t *testing.T) {
	// 把上限压低以触发保护边界
	p := NewCVProcessor(nil, []SettingOpt{WithsetMaxinputchars(100)})

	result, err := p.Analyze(context.Background(), "test-uuid", strings.Repeat("a", 101), "")
	require.Error(t, err, "超限输入应返回错误")
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrInputTooLarge), "错误应可识别为ErrInputTooLarge")
}

func TestExtractTextPlainText(t *testing.T) {
	p := NewCVProcessor(nil, nil)

	// .txt 和无扩展名都按UTF-8直接解码
	for _, filename := range []string{"resume.txt", "resume"} {
		text, err := p.ExtractText(context.Background(), "test-uuid", filename, []byte("hello resume"))
		require.NoError(t, err, "纯文本提取不应失败: %s", filename)
		assert.Equal(t, "hello resume", text)
	}
}

func TestExtractTextUnsupportedType(t *testing.T) {
	p := NewCVProcessor(nil, nil)

	_, err := p.ExtractText(context.Background(), "test-uuid", "resume.exe", []byte{0x4d, 0x5a})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFileType))
}

func TestExtractTextMissingExtractor(t *testing.T) {
	// 未注入PDF提取器时应返回提取错误而不是panic
	p := NewCVProcessor(nil, nil)

	_, err := p.ExtractText(context.Background(), "test-uuid", "resume.pdf", []byte("%PDF-1.4"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExtractTextFailed))
}

func TestProcessErrorFormat(t *testing.T) {
	err := NewOversizeError("uuid-123", "200001字符, 上限200000")

	var procErr *ProcessError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, "uuid-123", procErr.SubmissionUUID)
	assert.Equal(t, "size_check", procErr.Op)
	assert.Contains(t, err.Error(), "uuid-123")
	assert.Contains(t, err.Error(), "200001")
}
