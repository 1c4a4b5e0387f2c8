package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-insight-go/internal/config"
	"cv-insight-go/internal/processor"
	"cv-insight-go/internal/storage/models"
)

const sampleResumeText = `John Smith
john@example.com
(555) 123-4567

Summary:
Experienced software engineer with cloud deployment background.

Experience:
Senior Developer
Acme Corp
2020 - 2022
Built things.

Education:
B.S. Computer Science
MIT
2019

Skills: Python, AWS, Docker, Kubernetes, SQL`

func newTestHandler(t *testing.T) *AnalyzeHandler {
	t.Helper()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err, "测试环境加载默认配置不应失败")

	proc := processor.NewCVProcessor(nil, nil)
	// storage为nil, 走纯内存分析路径
	return NewAnalyzeHandler(cfg, nil, proc)
}

func TestHandleAnalyzeTextOnly(t *testing.T) {
	h := newTestHandler(t)

	// 1. 纯文本提交, 不带JD
	resp, err := h.HandleAnalyze(context.Background(), &AnalyzeRequest{
		Text:          sampleResumeText,
		SourceChannel: "test",
	})
	require.NoError(t, err, "纯文本分析不应返回错误")
	require.NotNil(t, resp.Result, "响应应该携带分析结果")

	// 2. 基本字段应该被提取
	assert.Equal(t, models.StatusAnalyzed, resp.Status)
	assert.NotEmpty(t, resp.SubmissionUUID, "应该生成提交UUID")
	assert.Equal(t, "John Smith", resp.Result.CV.PersonalInfo.Name)
	assert.Equal(t, "john@example.com", resp.Result.CV.PersonalInfo.Email)

	// 3. 无JD时不应有匹配结果, 但有ATS得分
	assert.Nil(t, resp.Result.Match, "没有JD时不应有匹配结果")
	assert.Greater(t, resp.Result.ATSScore, 0, "ATS得分应该大于0")
}

func TestHandleAnalyzeWithJobDescription(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h.HandleAnalyze(context.Background(), &AnalyzeRequest{
		Text:           sampleResumeText,
		JobDescription: "Looking for Python and AWS experience with Docker deployment",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Result)

	// 带JD时应该有匹配结果
	require.NotNil(t, resp.Result.Match, "有JD时应该有匹配结果")
	assert.Contains(t, resp.Result.Match.MatchingKeywords, "python")
	assert.Greater(t, resp.Result.Match.MatchScore, 0)
}

func TestHandleAnalyzeEmptyRequest(t *testing.T) {
	h := newTestHandler(t)

	// 既没有文件也没有文本应该报错
	_, err := h.HandleAnalyze(context.Background(), &AnalyzeRequest{})
	assert.Error(t, err, "空请求应该返回错误")
}

func TestHandleAnalyzeTxtFile(t *testing.T) {
	h := newTestHandler(t)

	// 纯文本文件走提取器分支
	resp, err := h.HandleAnalyze(context.Background(), &AnalyzeRequest{
		FileBytes: []byte(sampleResumeText),
		Filename:  "resume.txt",
	})
	require.NoError(t, err, "txt文件分析不应返回错误")
	require.NotNil(t, resp.Result)
	assert.Equal(t, "John Smith", resp.Result.CV.PersonalInfo.Name)
}

func TestHandleGetAnalysisWithoutDatabase(t *testing.T) {
	h := newTestHandler(t)

	// 数据库未配置时查询应该报错
	_, err := h.HandleGetAnalysis(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.Error(t, err, "数据库未配置时查询应该返回错误")
}

func TestFileExtDefault(t *testing.T) {
	assert.Equal(t, ".pdf", fileExt("resume"), "无扩展名应该默认PDF")
	assert.Equal(t, ".docx", fileExt("resume.docx"))
}
