package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cv-insight-go/internal/constants"
	"cv-insight-go/internal/logger"
	"cv-insight-go/internal/matcher"
	"cv-insight-go/internal/parser"
	"cv-insight-go/internal/storage"
	"cv-insight-go/internal/tracing"
	"cv-insight-go/internal/types"
)

var tracer = otel.Tracer("processor")

// Components 处理器的可替换组件，零值字段在构造时补默认实现
type Components struct {
	// PDF文本提取器
	PDFExtractor TextExtractor
	// DOCX文本提取器
	DocxExtractor TextExtractor
	// 规则解析器
	Parser *parser.CVParser
	// 关键词匹配器
	Matcher *matcher.KeywordMatcher
	// ATS评分器
	ATSScorer *matcher.ATSScorer
	// 聚合存储，可为nil（离线模式）
	Storage *storage.Storage
}

// Settings 处理器的行为设置
type Settings struct {
	// 输入文本大小上限(字符)，超过则拒绝处理
	MaxInputChars int
	// 解析器版本标识，随结果一起落库
	ParserVersion string
	// 调试模式
	Debug bool
}

// CVProcessor 简历分析的编排器：文本提取、规则解析、
// 匹配评分和洞察生成都经由它串联。
// 分析本身是纯内存计算，独立请求可以并发调用。
type CVProcessor struct {
	Components Components
	Settings   Settings
}

// NewCVProcessor 创建处理器，未提供的组件使用默认实现
func NewCVProcessor(compOpts []ComponentOpt, setOpts []SettingOpt) *CVProcessor {
	p := &CVProcessor{
		Settings: Settings{
			MaxInputChars: constants.MaxInputChars,
			ParserVersion: constants.DefaultParserVer,
		},
	}

	for _, opt := range compOpts {
		opt(&p.Components)
	}
	for _, opt := range setOpts {
		opt(&p.Settings)
	}

	if p.Components.Parser == nil {
		p.Components.Parser = parser.NewCVParser()
	}
	if p.Components.Matcher == nil {
		p.Components.Matcher = matcher.NewKeywordMatcher()
	}
	if p.Components.ATSScorer == nil {
		p.Components.ATSScorer = matcher.NewATSScorer()
	}

	return p
}

// ExtractText 按文件扩展名分发到对应的文本提取器。
// 纯文本文件直接按UTF-8解码。
func (p *CVProcessor) ExtractText(ctx context.Context, submissionUUID, filename string, data []byte) (string, error) {
	ctx, span := tracer.Start(ctx, "CVProcessor.ExtractText", trace.WithAttributes(
		attribute.String("submission.uuid", submissionUUID),
		attribute.String("file.name", tracing.TruncateString(filename, tracing.DefaultMaxLength)),
		attribute.Int("file.size", len(data)),
	))
	defer span.End()

	ext := strings.ToLower(filepath.Ext(filename))
	var (
		text string
		err  error
	)

	switch ext {
	case ".pdf":
		if p.Components.PDFExtractor == nil {
			err = NewExtractError(submissionUUID, "未配置PDF提取器")
			break
		}
		text, _, err = p.Components.PDFExtractor.ExtractTextFromBytes(ctx, data, filename, nil)
	case ".docx":
		if p.Components.DocxExtractor == nil {
			err = NewExtractError(submissionUUID, "未配置DOCX提取器")
			break
		}
		text, _, err = p.Components.DocxExtractor.ExtractTextFromBytes(ctx, data, filename, nil)
	case ".txt", "":
		text = string(data)
	default:
		err = NewUnsupportedFileTypeError(submissionUUID, fmt.Sprintf("扩展名: %s", ext))
	}

	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeInternal)
		return "", err
	}

	span.SetAttributes(attribute.Int("text.length", len(text)))
	return text, nil
}

// Analyze 对简历文本执行完整分析。
// jobDescription 非空时附带关键词匹配结果，否则只给通用ATS评分。
// 超过大小上限的输入返回可恢复的 ErrInputTooLarge。
func (p *CVProcessor) Analyze(ctx context.Context, submissionUUID, text, jobDescription string) (*types.AnalysisResult, error) {
	_, span := tracer.Start(ctx, "CVProcessor.Analyze", trace.WithAttributes(
		attribute.String("submission.uuid", submissionUUID),
		attribute.Int("text.length", len(text)),
		attribute.Bool("job_description.present", strings.TrimSpace(jobDescription) != ""),
	))
	defer span.End()

	// 防御性的大小上限，防止病态输入拖慢正则扫描
	if len(text) > p.Settings.MaxInputChars {
		err := NewOversizeError(submissionUUID, fmt.Sprintf("%d字符, 上限%d", len(text), p.Settings.MaxInputChars))
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		return nil, err
	}

	record := p.Components.Parser.Parse(text)

	result := &types.AnalysisResult{
		CV:          record,
		Suggestions: []string{},
	}

	var match *types.MatchResult
	if strings.TrimSpace(jobDescription) != "" {
		match = p.Components.Matcher.Match(text, jobDescription)
		result.Match = match
		result.Suggestions = match.Suggestions
		span.SetAttributes(attribute.Int("match.score", match.MatchScore))
	}

	result.ATSScore = p.Components.ATSScorer.Score(text)
	result.Insights = matcher.GenerateInsights(record, match)
	result.Completeness = matcher.CompletenessScore(record)

	// 未提供JD时，洞察文案兼作通用建议
	if match == nil {
		result.Suggestions = matcher.GeneralSuggestions(result.Insights)
	}

	span.SetAttributes(
		attribute.Int("ats.score", result.ATSScore),
		attribute.Int("completeness.score", result.Completeness),
	)

	if p.Settings.Debug {
		logger.Debug().
			Str("submission_uuid", submissionUUID).
			Int("ats_score", result.ATSScore).
			Int("completeness", result.Completeness).
			Int("skills", len(record.Skills)).
			Int("experience", len(record.Experience)).
			Msg("简历分析完成")
	}

	return result, nil
}
