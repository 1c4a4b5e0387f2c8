package matcher

import (
	"math"

	"cv-insight-go/internal/types"
)

// 完整度各组成部分的权重，总和100分
const (
	contactWeight    = 20.0 // 姓名/邮箱/电话按占比折算
	summaryWeight    = 15.0 // 总结长度超过50字符
	experienceWeight = 30.0 // 每条经历10分
	skillsWeight     = 20.0 // 每个技能2分
	educationWeight  = 15.0 // 每条教育经历7.5分

	summaryMinLen = 50
)

// GenerateInsights 从结构化简历记录推导类型化的改进提示。
// 纯函数，无I/O。match 可为 nil（未提供职位描述时）。
func GenerateInsights(record *types.CVRecord, match *types.MatchResult) []types.Insight {
	insights := make([]types.Insight, 0, 8)

	if record.PersonalInfo.Email == "" {
		insights = append(insights, types.Insight{
			Type:    types.InsightCritical,
			Message: "No email address was found. Add one so recruiters can contact you.",
		})
	}
	if record.PersonalInfo.Phone == "" {
		insights = append(insights, types.Insight{
			Type:    types.InsightWarning,
			Message: "No phone number was found. Consider adding one to your contact details.",
		})
	}
	if record.PersonalInfo.Name == "" {
		insights = append(insights, types.Insight{
			Type:    types.InsightWarning,
			Message: "No name was detected at the top of the resume.",
		})
	}
	if record.Summary == "" {
		insights = append(insights, types.Insight{
			Type:    types.InsightImprovement,
			Message: "Add a professional summary to give recruiters a quick overview of your profile.",
		})
	}
	if len(record.Experience) == 0 {
		insights = append(insights, types.Insight{
			Type:    types.InsightCritical,
			Message: "No work experience entries were detected. Use a clear 'Experience' section with job titles and dates.",
		})
	}
	if len(record.Skills) < 5 {
		insights = append(insights, types.Insight{
			Type:    types.InsightSuggestion,
			Message: "Fewer than 5 skills were detected. List more relevant skills in a dedicated section.",
		})
	}
	if len(record.Education) == 0 {
		insights = append(insights, types.Insight{
			Type:    types.InsightSuggestion,
			Message: "No education entries were detected. Add your degrees and institutions.",
		})
	}
	if match != nil && match.MatchScore < 50 {
		insights = append(insights, types.Insight{
			Type:    types.InsightWarning,
			Message: "The resume matches less than half of the job description keywords.",
		})
	}

	return insights
}

// CompletenessScore 计算简历完整度得分(0-100)。
// 各部分加权求和后统一取整，不会超过100。
func CompletenessScore(record *types.CVRecord) int {
	total := 0.0

	contactFields := 0
	if record.PersonalInfo.Name != "" {
		contactFields++
	}
	if record.PersonalInfo.Email != "" {
		contactFields++
	}
	if record.PersonalInfo.Phone != "" {
		contactFields++
	}
	total += contactWeight * float64(contactFields) / 3.0

	if len(record.Summary) > summaryMinLen {
		total += summaryWeight
	}

	expCount := len(record.Experience)
	if expCount > 3 {
		expCount = 3
	}
	total += float64(expCount) * 10.0

	skillCount := len(record.Skills)
	if skillCount > 10 {
		skillCount = 10
	}
	total += float64(skillCount) * 2.0

	eduCount := len(record.Education)
	if eduCount > 2 {
		eduCount = 2
	}
	total += float64(eduCount) * 7.5

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	return score
}

// GeneralSuggestions 将提示压缩为面向用户的建议列表，
// 未提供职位描述时随ATS得分一起返回
func GeneralSuggestions(insights []types.Insight) []string {
	suggestions := make([]string, 0, len(insights))
	for _, insight := range insights {
		suggestions = append(suggestions, insight.Message)
	}
	return suggestions
}
