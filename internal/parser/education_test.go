package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractEducationMultiLine 验证学位/学校/年份分布在连续行时的补齐
func TestExtractEducationMultiLine(t *testing.T) {
	body := "BS Computer Science\nMIT\n2019"

	entries := ExtractEducation(body, 3)

	require.Len(t, entries, 1)
	assert.Equal(t, "BS Computer Science", entries[0].Degree)
	assert.Equal(t, "MIT", entries[0].Institution)
	assert.Equal(t, "2019", entries[0].Year)
}

// TestExtractEducationInlineYear 验证行内年份抽出后的学位/学校拆分
func TestExtractEducationInlineYear(t *testing.T) {
	cases := []struct {
		name        string
		line        string
		degree      string
		institution string
		year        string
	}{
		{"竖线分隔", "MSc Data Science | Stanford University 2021", "MSc Data Science", "Stanford University", "2021"},
		{"逗号分隔", "BA Economics, Harvard 2015", "BA Economics", "Harvard", "2015"},
		{"无年份", "PhD Physics | Caltech", "PhD Physics", "Caltech", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := ExtractEducation(tc.line, 3)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.degree, entries[0].Degree)
			assert.Equal(t, tc.institution, entries[0].Institution)
			assert.Equal(t, tc.year, entries[0].Year)
		})
	}
}

// TestExtractEducationCap 验证教育经历条数不超过上限
func TestExtractEducationCap(t *testing.T) {
	var lines []string
	for i := 0; i < 6; i++ {
		lines = append(lines, fmt.Sprintf("Degree Number %d | School%d 200%d", i, i, i))
	}

	entries := ExtractEducation(strings.Join(lines, "\n"), 3)

	assert.Len(t, entries, 3, "教育经历条数不应超过上限")
}

// TestExtractEducationStopsAtReferences 验证证明人行终止扫描
func TestExtractEducationStopsAtReferences(t *testing.T) {
	body := "BS Math | State University 2012\nReferences\nFake Degree | Diploma Mill 1999"

	entries := ExtractEducation(body, 3)

	require.Len(t, entries, 1)
	assert.Equal(t, "BS Math", entries[0].Degree)
}

// TestExtractEducationEmptyBody 验证空正文返回空切片
func TestExtractEducationEmptyBody(t *testing.T) {
	assert.Empty(t, ExtractEducation("", 3))
}
