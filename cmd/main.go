package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"cv-insight-go/internal/api/handler"
	"cv-insight-go/internal/api/router"
	"cv-insight-go/internal/config"
	appCoreLogger "cv-insight-go/internal/logger"
	"cv-insight-go/internal/outbox"
	"cv-insight-go/internal/parser"
	"cv-insight-go/internal/processor"
	"cv-insight-go/internal/storage"
	"cv-insight-go/internal/tracing"
)

var (
	version     = "1.0.0"         //nolint:gochecknoglobals
	serviceName = "cv-insight-go" //nolint:gochecknoglobals
)

func main() {
	initLogger()

	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry追踪
	if cfg.Tracing.Enabled {
		tracingServiceName := cfg.Tracing.ServiceName
		if tracingServiceName == "" {
			tracingServiceName = serviceName
		}
		shutdownTracing, err := tracing.InitTracerProvider(ctx, tracing.ProviderConfig{
			Endpoint:    cfg.Tracing.OTLPEndpoint,
			ServiceName: tracingServiceName,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			glog.Warnf("初始化追踪失败，将在无追踪模式下运行: %v", err)
		} else {
			defer func() {
				shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancelShutdown()
				if err := shutdownTracing(shutdownCtx); err != nil {
					glog.Warnf("关闭追踪失败: %v", err)
				}
			}()
			glog.Info("OpenTelemetry追踪初始化成功")
		}
	}

	// 存储组件按可用性降级, 全部缺失才会报错
	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		glog.Warnf("初始化存储失败，将以纯内存模式运行: %v", err)
		storageManager = nil
	} else {
		defer storageManager.Close()
		glog.Info("存储服务初始化成功")
	}

	// 消息中继需要MySQL和RabbitMQ同时可用
	var messageRelay *outbox.MessageRelay
	if storageManager != nil && storageManager.MySQL != nil && storageManager.RabbitMQ != nil {
		if err := storageManager.RabbitMQ.SetupResumeEventsTopology(); err != nil {
			glog.Warnf("声明简历事件拓扑失败: %v", err)
		}
		relayLogger := log.New(appCoreLogger.Logger, "[MessageRelay] ", log.LstdFlags|log.Lshortfile)
		messageRelay = outbox.NewMessageRelay(storageManager.MySQL.DB(), storageManager.RabbitMQ, relayLogger)
		messageRelay.Start()
		glog.Info("消息中继服务已启动")
	} else {
		glog.Warn("MySQL或RabbitMQ不可用，跳过消息中继服务")
	}

	pdfExtractor, err := parser.NewEinoPDFTextExtractor(ctx, parser.WithEinoLogger(log.New(os.Stderr, "[EinoPDFMain] ", log.LstdFlags)))
	if err != nil {
		glog.Fatalf("创建Eino PDF提取器失败: %v", err)
	}
	glog.Info("Eino PDF解析器初始化成功")

	docxExtractor := parser.NewDocxTextExtractor(parser.WithDocxLogger(log.New(os.Stderr, "[DocxMain] ", log.LstdFlags)))
	glog.Info("DOCX解析器初始化成功")

	cvProcessor := processor.NewCVProcessor(
		[]processor.ComponentOpt{
			processor.WithcompPdfextractor(pdfExtractor),
			processor.WithcompDocxextractor(docxExtractor),
			processor.WithcompStorage(storageManager),
		},
		[]processor.SettingOpt{
			processor.WithsetMaxinputchars(cfg.Parser.MaxInputChars),
			processor.WithsetParserversion(cfg.ActiveParserVersion),
			processor.WithsetDebug(cfg.Logger.Level == "debug"),
		},
	)
	glog.Info("CVProcessor初始化成功")

	analyzeHandler := handler.NewAnalyzeHandler(cfg, storageManager, cvProcessor)
	glog.Info("AnalyzeHandler初始化成功")

	tracer, tracerCfg := hertztracing.NewServerTracer()
	h := server.New(
		tracer,
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, cfg, analyzeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s (版本: %s)", cfg.Server.Address, version)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	if messageRelay != nil {
		messageRelay.Stop()
		glog.Info("消息中继服务已停止")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

func initLogger() {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Fatalf("无法创建日志目录: %v", err)
	}
	logFilePath := "logs/app.log"
	fileWriter, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("无法打开日志文件 %s: %v", logFilePath, err)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	multiWriter := zerolog.MultiLevelWriter(consoleWriter, fileWriter)

	level := zerolog.InfoLevel
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = "15:04:05"

	logger := zerolog.New(multiWriter).With().Timestamp().Caller().Logger()

	// 设置全局logger, 应用内和zerolog的stdlib包装都指向同一个实例
	appCoreLogger.Logger = logger
	zlog.Logger = logger

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
	glog.SetLevel(glog.LevelInfo)

	log.Println("Logger initialized with Zerolog, writing to console and file:", logFilePath)
}
