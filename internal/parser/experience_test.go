package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractExperienceTitleCompanyDuration 验证职位/公司/日期分布在连续行时的补齐
func TestExtractExperienceTitleCompanyDuration(t *testing.T) {
	body := "Software Engineer\nAcme Corp\n2020 - 2022\n- Built things.\n- Shipped features."

	entries := ExtractExperience(body, 5)

	require.Len(t, entries, 1, "应只提取出一条工作经历")
	assert.Equal(t, "Software Engineer", entries[0].Title)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "2020 - 2022", entries[0].Duration)
	assert.Equal(t, "Built things. Shipped features.", entries[0].Description, "描述行应剥离项目符号后用空格连接")
}

// TestExtractExperienceInlineDuration 验证触发行自带日期时的职位/公司拆分
func TestExtractExperienceInlineDuration(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		title   string
		company string
	}{
		{"竖线分隔", "Backend Developer | Initech Jan 2019 - Dec 2021", "Backend Developer", "Initech"},
		{"at符号分隔", "Data Analyst @ Globex 2018-2020", "Data Analyst", "Globex"},
		{"逗号加大写", "Product Manager, Hooli 2017 - Present", "Product Manager", "Hooli"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := ExtractExperience(tc.line, 5)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.title, entries[0].Title)
			assert.Equal(t, tc.company, entries[0].Company)
			assert.NotEmpty(t, entries[0].Duration)
		})
	}
}

// TestExtractExperienceMultipleEntries 验证多条经历的切分
func TestExtractExperienceMultipleEntries(t *testing.T) {
	body := strings.Join([]string{
		"Senior Engineer | BigCo Jan 2021 - Present",
		"- Led the platform team.",
		"Junior Engineer | SmallCo 2018 - 2020",
		"- Wrote code.",
	}, "\n")

	entries := ExtractExperience(body, 5)

	require.Len(t, entries, 2)
	assert.Equal(t, "Senior Engineer", entries[0].Title)
	assert.Equal(t, "BigCo", entries[0].Company)
	assert.Equal(t, "Junior Engineer", entries[1].Title)
	assert.Equal(t, "Wrote code.", entries[1].Description)
}

// TestExtractExperienceCap 验证经历条数不超过上限
func TestExtractExperienceCap(t *testing.T) {
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, fmt.Sprintf("Engineer Role %d | Company%d 2010 - 2012", i, i))
	}

	entries := ExtractExperience(strings.Join(lines, "\n"), 5)

	assert.Len(t, entries, 5, "经历条数不应超过上限")
}

// TestExtractExperienceStopsAtReferences 验证证明人行终止整个扫描
func TestExtractExperienceStopsAtReferences(t *testing.T) {
	body := "Engineer | Acme 2020 - 2022\nReferences available upon request\nGhost Role | Nowhere 2001 - 2002"

	entries := ExtractExperience(body, 5)

	require.Len(t, entries, 1)
	assert.Equal(t, "Engineer", entries[0].Title)
}

// TestExtractExperienceEmptyBody 验证空正文返回空切片
func TestExtractExperienceEmptyBody(t *testing.T) {
	assert.Empty(t, ExtractExperience("", 5))
	assert.Empty(t, ExtractExperience("\n  \n", 5))
}
