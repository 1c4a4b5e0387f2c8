package constants

import "time"

const (
	// DefaultParserVer 当前启发式解析器版本，写入分析记录便于回溯
	DefaultParserVer = "heuristic-v1"

	// MaxInputChars 提取前的输入字符上限，超过则拒绝处理
	// 这是资源保护边界，不是正确性要求：超长的单行文本会拖慢正则扫描
	MaxInputChars = 200_000

	// MaxExperienceEntries 工作经历条目上限
	MaxExperienceEntries = 5
	// MaxEducationEntries 教育经历条目上限
	MaxEducationEntries = 3
	// MaxSkills 技能条目上限（去重后）
	MaxSkills = 30
	// MaxMissingKeywords 缺失关键词列表上限
	MaxMissingKeywords = 10

	// MaxMatchScore 匹配分数上限，永远不报告100%以避免暗示完全匹配
	MaxMatchScore = 95
	// MaxATSScore 通用ATS分数上限
	MaxATSScore = 90

	// HeaderLineMaxLen 短于该长度的行才可能被当作章节标题
	HeaderLineMaxLen = 50

	// AnalysisCacheDuration 按文本MD5缓存的分析结果过期时间
	AnalysisCacheDuration = 24 * time.Hour
)
