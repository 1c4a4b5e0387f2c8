package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// 处理状态常量
const (
	StatusPendingParsing    = "PENDING_PARSING"
	StatusParsing           = "PARSING"
	StatusAnalyzed          = "ANALYZED"
	StatusParseFailed       = "PARSE_FAILED"
	StatusDuplicateSkipped  = "DUPLICATE_FILE_SKIPPED"
	StatusDuplicateTextSkip = "DUPLICATE_TEXT_SKIPPED"
)

// ResumeAnalysis 简历分析记录表, 每次提交对应一行快照
type ResumeAnalysis struct {
	SubmissionUUID      string         `gorm:"type:char(36);primaryKey"`
	OriginalFilename    string         `gorm:"type:varchar(255)"`
	SourceChannel       string         `gorm:"type:varchar(100)"`
	OriginalFilePathOSS string         `gorm:"type:varchar(1024)"`
	ParsedTextPathOSS   string         `gorm:"type:varchar(1024)"`
	RawFileMD5          string         `gorm:"type:char(32);index:idx_ra_raw_file_md5"`
	ParsedTextMD5       string         `gorm:"type:char(32);index:idx_ra_parsed_text_md5"`
	CVRecordJSON        datatypes.JSON `gorm:"type:json"`
	MatchResultJSON     datatypes.JSON `gorm:"type:json"`
	InsightsJSON        datatypes.JSON `gorm:"type:json"`
	ATSScore            *int           `gorm:"type:int"`
	MatchScore          *int           `gorm:"type:int"`
	CompletenessScore   *int           `gorm:"type:int"`
	ProcessingStatus    string         `gorm:"type:varchar(50);default:'PENDING_PARSING';index:idx_ra_processing_status"`
	ParserVersion       string         `gorm:"type:varchar(50)"`
	SubmittedAt         time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);index:idx_ra_submitted_at"`
	CreatedAt           time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt           time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (ResumeAnalysis) TableName() string {
	return "resume_analyses"
}

// StringToJSON Helper function to convert string to datatypes.JSON
func StringToJSON(s string) datatypes.JSON {
	return datatypes.JSON(s)
}

// MarshalToJSON Helper function to convert any value to datatypes.JSON
func MarshalToJSON(v interface{}) (datatypes.JSON, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
