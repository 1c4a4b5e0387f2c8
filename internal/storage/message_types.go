package storage

import "time"

// 简历事件类型
const (
	EventTypeResumeAnalyzed = "resume.analyzed"
)

// ResumeAnalyzedEvent 简历分析完成事件
type ResumeAnalyzedEvent struct {
	// 与数据库表字段一致的主要字段
	SubmissionUUID    string    `json:"submission_uuid"`                // 提交UUID，主键
	AnalyzedAt        time.Time `json:"analyzed_at"`                    // 分析完成时间
	OriginalFilename  string    `json:"original_filename"`              // 原始文件名
	SourceChannel     string    `json:"source_channel,omitempty"`       // 来源渠道
	ParsedTextPathOSS string    `json:"parsed_text_path_oss,omitempty"` // 解析文本在MinIO中的路径
	ParsedTextMD5     string    `json:"parsed_text_md5,omitempty"`      // 解析文本MD5

	// 分析结论摘要
	ATSScore          int    `json:"ats_score"`                     // ATS格式得分
	MatchScore        *int   `json:"match_score,omitempty"`         // 关键词匹配得分 (无JD时为空)
	CompletenessScore int    `json:"completeness_score"`            // 完整度得分
	ParserVersion     string `json:"parser_version,omitempty"`      // 解析器版本
	ProcessingStatus  string `json:"processing_status,omitempty"`   // 处理状态
}
