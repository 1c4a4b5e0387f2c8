package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"cv-insight-go/internal/parser"
	"cv-insight-go/internal/processor"
)

// cvparse 是离线分析入口: 读取本地简历文件(或stdin文本),
// 走与HTTP服务相同的处理器, 把分析结果JSON打印到stdout。
func main() {
	var (
		filePath string
		jdText   string
		jdFile   string
		pretty   bool
	)
	pflag.StringVarP(&filePath, "file", "f", "", "简历文件路径 (.pdf/.docx/.txt), 为空时从stdin读取文本")
	pflag.StringVarP(&jdText, "jd", "j", "", "岗位描述文本, 提供后输出关键词匹配结果")
	pflag.StringVar(&jdFile, "jd-file", "", "岗位描述文件路径, 与--jd互斥")
	pflag.BoolVar(&pretty, "pretty", true, "缩进输出JSON")
	pflag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if jdText != "" && jdFile != "" {
		fatalf("--jd 和 --jd-file 只能提供一个")
	}
	if jdFile != "" {
		data, err := os.ReadFile(jdFile)
		if err != nil {
			fatalf("读取岗位描述文件失败: %v", err)
		}
		jdText = string(data)
	}

	proc := newOfflineProcessor(ctx)

	text, err := readResumeText(ctx, proc, filePath)
	if err != nil {
		fatalf("%v", err)
	}
	if strings.TrimSpace(text) == "" {
		fatalf("简历内容为空")
	}

	result, err := proc.Analyze(ctx, "cli", text, jdText)
	if err != nil {
		fatalf("分析失败: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		fatalf("输出结果失败: %v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// newOfflineProcessor 创建不挂存储的处理器, 仅做内存分析
func newOfflineProcessor(ctx context.Context) *processor.CVProcessor {
	quiet := log.New(io.Discard, "", 0)

	var compOpts []processor.ComponentOpt
	pdfExtractor, err := parser.NewEinoPDFTextExtractor(ctx, parser.WithEinoLogger(quiet))
	if err != nil {
		// PDF提取器创建失败时 .txt/stdin 输入仍然可用
		fmt.Fprintf(os.Stderr, "警告: 创建PDF提取器失败: %v\n", err)
	} else {
		compOpts = append(compOpts, processor.WithcompPdfextractor(pdfExtractor))
	}
	compOpts = append(compOpts, processor.WithcompDocxextractor(parser.NewDocxTextExtractor(parser.WithDocxLogger(quiet))))

	return processor.NewCVProcessor(compOpts, nil)
}

// readResumeText 读取简历文本: 有文件路径时按扩展名提取, 否则读stdin
func readResumeText(ctx context.Context, proc *processor.CVProcessor, filePath string) (string, error) {
	if filePath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("从stdin读取文本失败: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("读取简历文件失败: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".pdf", ".docx":
		text, err := proc.ExtractText(ctx, "cli", filePath, data)
		if err != nil {
			return "", fmt.Errorf("提取文件文本失败: %w", err)
		}
		return text, nil
	default:
		// 其余格式按纯文本处理
		return string(data), nil
	}
}
