package processor

import (
	"cv-insight-go/internal/matcher"
	"cv-insight-go/internal/parser"
	"cv-insight-go/internal/storage"
)

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// ----- 组件选项 -----

// WithcompPdfextractor 设置PDF文本提取器组件
func WithcompPdfextractor(extractor TextExtractor) ComponentOpt {
	return func(c *Components) {
		c.PDFExtractor = extractor
	}
}

// WithcompDocxextractor 设置DOCX文本提取器组件
func WithcompDocxextractor(extractor TextExtractor) ComponentOpt {
	return func(c *Components) {
		c.DocxExtractor = extractor
	}
}

// WithcompParser 设置简历解析器组件
func WithcompParser(p *parser.CVParser) ComponentOpt {
	return func(c *Components) {
		c.Parser = p
	}
}

// WithcompMatcher 设置关键词匹配器组件
func WithcompMatcher(m *matcher.KeywordMatcher) ComponentOpt {
	return func(c *Components) {
		c.Matcher = m
	}
}

// WithcompAtsscorer 设置ATS评分器组件
func WithcompAtsscorer(s *matcher.ATSScorer) ComponentOpt {
	return func(c *Components) {
		c.ATSScorer = s
	}
}

// WithcompStorage 设置存储组件
func WithcompStorage(s *storage.Storage) ComponentOpt {
	return func(c *Components) {
		c.Storage = s
	}
}

// ----- 设置选项 -----

// WithsetMaxinputchars 设置输入文本大小上限
func WithsetMaxinputchars(n int) SettingOpt {
	return func(s *Settings) {
		if n > 0 {
			s.MaxInputChars = n
		}
	}
}

// WithsetParserversion 设置解析器版本标识
func WithsetParserversion(version string) SettingOpt {
	return func(s *Settings) {
		if version != "" {
			s.ParserVersion = version
		}
	}
}

// WithsetDebug 设置调试模式
func WithsetDebug(debug bool) SettingOpt {
	return func(s *Settings) {
		s.Debug = debug
	}
}
