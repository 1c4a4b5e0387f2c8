package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/uuid/v5"

	"cv-insight-go/internal/config"
	"cv-insight-go/internal/logger"
	"cv-insight-go/internal/processor"
	"cv-insight-go/internal/storage"
	"cv-insight-go/internal/storage/models"
	"cv-insight-go/internal/types"
	"cv-insight-go/pkg/utils"
)

// AnalyzeHandler 简历分析处理器，负责协调上传、去重、解析和落库流程
type AnalyzeHandler struct {
	cfg             *config.Config
	storage         *storage.Storage       // 聚合的storage实例, 各组件可能为nil(降级运行)
	processorModule *processor.CVProcessor // 文本提取 + 启发式分析
}

// NewAnalyzeHandler 创建一个新的简历分析处理器
func NewAnalyzeHandler(
	cfg *config.Config,
	storage *storage.Storage,
	processorModule *processor.CVProcessor,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:             cfg,
		storage:         storage,
		processorModule: processorModule,
	}
}

// AnalyzeRequest 简历分析请求, 文件和纯文本二选一
type AnalyzeRequest struct {
	FileBytes      []byte // 上传的文件内容 (可为空)
	Filename       string // 原始文件名
	Text           string // 直接提交的纯文本 (可为空)
	JobDescription string // 可选的岗位描述
	SourceChannel  string // 来源渠道
}

// AnalyzeResponse 简历分析响应
type AnalyzeResponse struct {
	SubmissionUUID string                `json:"submission_uuid"`
	Status         string                `json:"status"`
	Result         *types.AnalysisResult `json:"result,omitempty"`
}

// HandleAnalyze 处理一次简历分析请求。
// 存储组件不可用时退化为纯内存分析，不影响核心结果。
func (h *AnalyzeHandler) HandleAnalyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	if len(req.FileBytes) == 0 && req.Text == "" {
		return nil, fmt.Errorf("请求中既没有文件也没有文本")
	}

	// 1. 原始文件MD5去重 (仅对文件上传, 且Redis可用时)
	var fileMD5Hex string
	if len(req.FileBytes) > 0 {
		fileMD5Hex = utils.CalculateMD5(req.FileBytes)
		if h.redisAvailable() {
			exists, err := h.storage.Redis.CheckRawFileMD5Exists(ctx, fileMD5Hex)
			if err != nil {
				logger.Error().
					Err(err).
					Str("md5", fileMD5Hex).
					Msg("查询Redis文件MD5 Set失败")
				return nil, fmt.Errorf("检查文件MD5重复性时Redis查询失败: %w", err)
			}
			if exists {
				logger.Info().
					Str("md5", fileMD5Hex).
					Str("filename", req.Filename).
					Msg("检测到重复的文件MD5，跳过处理")
				return &AnalyzeResponse{
					SubmissionUUID: "",
					Status:         models.StatusDuplicateSkipped,
				}, nil
			}
		}
	}

	// 2. 生成UUIDv7作为提交标识
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	// 3. 上传原始文件到MinIO并登记文件MD5
	var originalObjectKey string
	if len(req.FileBytes) > 0 && h.minioAvailable() {
		ext := fileExt(req.Filename)
		originalObjectKey, err = h.storage.MinIO.UploadBytes(ctx, submissionUUID, ext, req.FileBytes)
		if err != nil {
			return nil, processor.NewStoreError(submissionUUID, err.Error())
		}

		if h.redisAvailable() {
			// 添加失败只降低去重效果，不阻塞流程，文本MD5是第二道防线
			if err := h.storage.Redis.AddRawFileMD5(ctx, fileMD5Hex); err != nil {
				logger.Warn().
					Err(err).
					Str("md5", fileMD5Hex).
					Str("object_key", originalObjectKey).
					Msg("添加文件MD5到Redis Set失败，文件已上传到MinIO")
			}
		}
	}

	// 4. 落库初始记录
	if h.mysqlAvailable() {
		record := &models.ResumeAnalysis{
			SubmissionUUID:      submissionUUID,
			OriginalFilename:    req.Filename,
			SourceChannel:       req.SourceChannel,
			OriginalFilePathOSS: originalObjectKey,
			RawFileMD5:          fileMD5Hex,
			ProcessingStatus:    models.StatusPendingParsing,
			SubmittedAt:         time.Now(),
		}
		if err := h.storage.MySQL.CreateResumeAnalysis(ctx, record); err != nil {
			logger.Error().
				Err(err).
				Str("submission_uuid", submissionUUID).
				Msg("插入简历分析记录失败")
			return nil, processor.NewDatabaseError(submissionUUID, err.Error())
		}
	}

	// 5. 提取文本
	text := req.Text
	if text == "" {
		text, err = h.processorModule.ExtractText(ctx, submissionUUID, req.Filename, req.FileBytes)
		if err != nil {
			h.markFailed(ctx, submissionUUID)
			return nil, err
		}
	}

	// 6. 分析 (优先命中文本MD5的结果缓存)
	textMD5Hex := utils.CalculateMD5([]byte(text))
	result, cacheHit := h.lookupCachedResult(ctx, submissionUUID, textMD5Hex)
	if result == nil {
		result, err = h.processorModule.Analyze(ctx, submissionUUID, text, req.JobDescription)
		if err != nil {
			h.markFailed(ctx, submissionUUID)
			return nil, err
		}
	}

	// 7. 存储解析文本并登记文本MD5与结果缓存
	var parsedTextObjectKey string
	if h.minioAvailable() {
		parsedTextObjectKey, err = h.storage.MinIO.UploadParsedText(ctx, submissionUUID, text)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("submission_uuid", submissionUUID).
				Msg("上传解析文本到MinIO失败，分析结果仍然有效")
			parsedTextObjectKey = ""
		}
	}
	if h.redisAvailable() && !cacheHit {
		if err := h.storage.Redis.AddParsedTextMD5(ctx, textMD5Hex); err != nil {
			logger.Warn().
				Err(err).
				Str("textMD5", textMD5Hex).
				Msg("添加文本MD5到Redis Set失败")
		}
		if err := h.storage.Redis.CacheAnalysisResult(ctx, textMD5Hex, result); err != nil {
			logger.Warn().
				Err(err).
				Str("textMD5", textMD5Hex).
				Msg("写入分析结果缓存失败")
		}
	}

	// 8. 在同一事务内写入最终结果和resume.analyzed出站事件
	if h.mysqlAvailable() {
		if err := h.persistResult(ctx, submissionUUID, req, result, textMD5Hex, parsedTextObjectKey); err != nil {
			logger.Error().
				Err(err).
				Str("submission_uuid", submissionUUID).
				Msg("写入分析结果失败")
			return nil, processor.NewDatabaseError(submissionUUID, err.Error())
		}
	}

	return &AnalyzeResponse{
		SubmissionUUID: submissionUUID,
		Status:         models.StatusAnalyzed,
		Result:         result,
	}, nil
}

// HandleGetAnalysis 按提交UUID查询已存储的分析结果
func (h *AnalyzeHandler) HandleGetAnalysis(ctx context.Context, submissionUUID string) (*AnalyzeResponse, error) {
	if !h.mysqlAvailable() {
		return nil, fmt.Errorf("数据库未配置, 无法查询历史分析")
	}

	record, err := h.storage.MySQL.GetResumeAnalysisByUUID(ctx, submissionUUID)
	if err != nil {
		return nil, err
	}

	resp := &AnalyzeResponse{
		SubmissionUUID: record.SubmissionUUID,
		Status:         record.ProcessingStatus,
	}

	result := &types.AnalysisResult{}
	if len(record.CVRecordJSON) > 0 {
		cv := &types.CVRecord{}
		if err := json.Unmarshal(record.CVRecordJSON, cv); err == nil {
			result.CV = cv
		}
	}
	if len(record.MatchResultJSON) > 0 {
		match := &types.MatchResult{}
		if err := json.Unmarshal(record.MatchResultJSON, match); err == nil {
			result.Match = match
			result.Suggestions = match.Suggestions
		}
	}
	if len(record.InsightsJSON) > 0 {
		var insights []types.Insight
		if err := json.Unmarshal(record.InsightsJSON, &insights); err == nil {
			result.Insights = insights
		}
	}
	if record.ATSScore != nil {
		result.ATSScore = *record.ATSScore
	}
	if record.CompletenessScore != nil {
		result.Completeness = *record.CompletenessScore
	}

	if result.CV != nil {
		resp.Result = result
	}
	return resp, nil
}

// lookupCachedResult 查询文本MD5对应的结果缓存, 返回(结果, 是否命中)
func (h *AnalyzeHandler) lookupCachedResult(ctx context.Context, submissionUUID, textMD5Hex string) (*types.AnalysisResult, bool) {
	if !h.redisAvailable() {
		return nil, false
	}
	cached, err := h.storage.Redis.GetCachedAnalysisResult(ctx, textMD5Hex)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("submission_uuid", submissionUUID).
			Str("textMD5", textMD5Hex).
			Msg("查询分析结果缓存失败，将重新分析")
		return nil, false
	}
	if cached != nil {
		logger.Info().
			Str("submission_uuid", submissionUUID).
			Str("textMD5", textMD5Hex).
			Msg("命中文本MD5结果缓存，跳过重复分析")
		return cached, true
	}
	return nil, false
}

// persistResult 写入最终分析结果并在同一事务内登记出站事件
func (h *AnalyzeHandler) persistResult(ctx context.Context, submissionUUID string, req *AnalyzeRequest, result *types.AnalysisResult, textMD5Hex, parsedTextObjectKey string) error {
	cvJSON, err := models.MarshalToJSON(result.CV)
	if err != nil {
		return fmt.Errorf("序列化CVRecord失败: %w", err)
	}
	insightsJSON, err := models.MarshalToJSON(result.Insights)
	if err != nil {
		return fmt.Errorf("序列化insights失败: %w", err)
	}

	parserVersion := h.cfg.ActiveParserVersion
	if len(parserVersion) > 50 { // 遵守数据库字段长度限制
		parserVersion = parserVersion[:50]
	}

	updates := map[string]interface{}{
		"parsed_text_path_oss": parsedTextObjectKey,
		"parsed_text_md5":      textMD5Hex,
		"cv_record_json":       cvJSON,
		"insights_json":        insightsJSON,
		"ats_score":            result.ATSScore,
		"completeness_score":   result.Completeness,
		"processing_status":    models.StatusAnalyzed,
		"parser_version":       parserVersion,
	}

	var matchScore *int
	if result.Match != nil {
		matchJSON, err := models.MarshalToJSON(result.Match)
		if err != nil {
			return fmt.Errorf("序列化MatchResult失败: %w", err)
		}
		updates["match_result_json"] = matchJSON
		updates["match_score"] = result.Match.MatchScore
		matchScore = utils.IntPtr(result.Match.MatchScore)
	}

	event := storage.ResumeAnalyzedEvent{
		SubmissionUUID:    submissionUUID,
		AnalyzedAt:        time.Now(),
		OriginalFilename:  req.Filename,
		SourceChannel:     req.SourceChannel,
		ParsedTextPathOSS: parsedTextObjectKey,
		ParsedTextMD5:     textMD5Hex,
		ATSScore:          result.ATSScore,
		MatchScore:        matchScore,
		CompletenessScore: result.Completeness,
		ParserVersion:     parserVersion,
		ProcessingStatus:  models.StatusAnalyzed,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("序列化分析完成事件失败: %w", err)
	}

	// 未配置事件交换机时跳过出站消息；MQ连接暂时断开不影响落库,
	// relay会在连接恢复后补发
	var outboxMsg *models.OutboxMessage
	if h.cfg.RabbitMQ.ResumeEventsExchange != "" {
		outboxMsg = &models.OutboxMessage{
			AggregateID:      submissionUUID,
			EventType:        storage.EventTypeResumeAnalyzed,
			Payload:          string(payload),
			TargetExchange:   h.cfg.RabbitMQ.ResumeEventsExchange,
			TargetRoutingKey: h.cfg.RabbitMQ.AnalyzedRoutingKey,
			Status:           models.OutboxStatusPending,
		}
	}

	return h.storage.MySQL.SaveAnalysisResultWithOutbox(ctx, submissionUUID, updates, outboxMsg)
}

// markFailed 把分析记录标记为解析失败, 仅在数据库可用时生效
func (h *AnalyzeHandler) markFailed(ctx context.Context, submissionUUID string) {
	if !h.mysqlAvailable() {
		return
	}
	if err := h.storage.MySQL.UpdateProcessingStatus(ctx, submissionUUID, models.StatusParseFailed); err != nil {
		logger.Error().
			Err(err).
			Str("submission_uuid", submissionUUID).
			Msg("更新简历状态为PARSE_FAILED失败")
	}
}

// fileExt 返回文件扩展名, 缺失时按历史惯例默认PDF
func fileExt(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".pdf"
	}
	return ext
}

func (h *AnalyzeHandler) redisAvailable() bool {
	return h.storage != nil && h.storage.Redis != nil
}

func (h *AnalyzeHandler) minioAvailable() bool {
	return h.storage != nil && h.storage.MinIO != nil
}

func (h *AnalyzeHandler) mysqlAvailable() bool {
	return h.storage != nil && h.storage.MySQL != nil
}
