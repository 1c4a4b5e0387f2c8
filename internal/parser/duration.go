package parser

import "regexp"

// 日期区间识别模式。
// 起止之间的分隔符接受连字符、短横线、长横线或单词"to"。
const (
	monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?`
	yearPattern  = `(?:19|20)\d{2}`
	sepPattern   = `\s*(?:[-–—]|to)\s*`
	nowPattern   = `(?:Present|Current|Now)`
)

// 按优先级排列的日期区间模式，取第一个命中的完整子串
var durationPatterns = []*regexp.Regexp{
	// 月份名区间: "Jan 2020 - Dec 2023"
	regexp.MustCompile(`(?i)` + monthPattern + `\s+` + yearPattern + sepPattern + monthPattern + `\s+` + yearPattern),
	// 月份名到至今: "Jan 2020 - Present"
	regexp.MustCompile(`(?i)` + monthPattern + `\s+` + yearPattern + sepPattern + nowPattern),
	// 年份区间: "2020-2023"
	regexp.MustCompile(`(?i)` + yearPattern + sepPattern + yearPattern),
	// 年份到至今: "2020 - Present"
	regexp.MustCompile(`(?i)` + yearPattern + sepPattern + nowPattern),
	// 数字月/年区间: "01/2020-12/2023"
	regexp.MustCompile(`\d{1,2}/` + yearPattern + sepPattern + `\d{1,2}/` + yearPattern),
	// 数字月/年到至今: "01/2020 - Present"
	regexp.MustCompile(`(?i)\d{1,2}/` + yearPattern + sepPattern + nowPattern),
}

// ExtractDuration 提取第一个日期区间子串，未找到返回空字符串
func ExtractDuration(text string) string {
	for _, pattern := range durationPatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}
