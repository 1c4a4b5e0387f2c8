package router

import (
	"context"
	"errors"
	"io"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"

	"cv-insight-go/internal/api/handler"
	"cv-insight-go/internal/config"
	"cv-insight-go/internal/logger"
	"cv-insight-go/internal/processor"
	"cv-insight-go/internal/ratelimit"
	"cv-insight-go/internal/storage"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, cfg *config.Config, analyzeHandler *handler.AnalyzeHandler) {
	api := h.Group("/api/v1")

	// 健康检查不设防护
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})

	protected := api.Group("")

	// 配置了API key时开启keyauth保护
	if cfg.Server.APIKey != "" {
		apiKey := cfg.Server.APIKey
		protected.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:Authorization", "Bearer"),
			keyauth.WithValidator(func(c context.Context, ctx *app.RequestContext, key string) (bool, error) {
				return key == apiKey, nil
			}),
		))
	}

	// 上传入口的令牌桶限流
	limiter := ratelimit.NewTokenBucket(float64(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitCapacity)

	protected.POST("/resume/analyze", func(c context.Context, ctx *app.RequestContext) {
		if !limiter.Allow() {
			ctx.JSON(consts.StatusTooManyRequests, utils.H{"error": "请求过于频繁，请稍后再试"})
			return
		}

		req, err := buildAnalyzeRequest(ctx, cfg)
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
			return
		}

		resp, err := analyzeHandler.HandleAnalyze(c, req)
		if err != nil {
			status := consts.StatusInternalServerError
			switch {
			case errors.Is(err, processor.ErrInputTooLarge):
				status = consts.StatusRequestEntityTooLarge
			case errors.Is(err, processor.ErrUnsupportedFileType):
				status = consts.StatusUnsupportedMediaType
			case errors.Is(err, processor.ErrExtractTextFailed):
				status = consts.StatusUnprocessableEntity
			}
			logger.Error().Err(err).Msg("简历分析请求处理失败")
			ctx.JSON(status, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	protected.GET("/resume/:uuid", func(c context.Context, ctx *app.RequestContext) {
		submissionUUID := ctx.Param("uuid")
		if submissionUUID == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少uuid参数"})
			return
		}

		resp, err := analyzeHandler.HandleGetAnalysis(c, submissionUUID)
		if err != nil {
			if errors.Is(err, storage.ErrAnalysisNotFound) {
				ctx.JSON(consts.StatusNotFound, utils.H{"error": "分析记录不存在"})
				return
			}
			logger.Error().Err(err).Str("submission_uuid", submissionUUID).Msg("查询分析记录失败")
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})
}

// buildAnalyzeRequest 从multipart表单提取分析请求, 文件和text字段二选一
func buildAnalyzeRequest(ctx *app.RequestContext, cfg *config.Config) (*handler.AnalyzeRequest, error) {
	req := &handler.AnalyzeRequest{
		JobDescription: ctx.PostForm("job_description"),
		SourceChannel:  ctx.PostForm("source_channel"),
	}
	if req.SourceChannel == "" {
		req.SourceChannel = "web_upload"
	}

	fileHeader, err := ctx.FormFile("file")
	if err == nil && fileHeader != nil {
		maxBytes := int64(cfg.Server.MaxUploadSizeMB) * 1024 * 1024
		if maxBytes > 0 && fileHeader.Size > maxBytes {
			return nil, errors.New("上传文件超过大小上限")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, errors.New("打开上传文件失败")
		}
		defer file.Close()

		fileBytes, err := io.ReadAll(file)
		if err != nil {
			return nil, errors.New("读取上传文件内容失败")
		}
		req.FileBytes = fileBytes
		req.Filename = fileHeader.Filename
		return req, nil
	}

	req.Text = ctx.PostForm("text")
	if req.Text == "" {
		return nil, errors.New("请求中既没有文件也没有text字段")
	}
	return req, nil
}
