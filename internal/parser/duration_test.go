package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractDuration 验证六类日期区间模式按序命中
func TestExtractDuration(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected string
	}{
		{"月份名区间", "Software Engineer Jan 2020 - Dec 2023 at Acme", "Jan 2020 - Dec 2023"},
		{"完整月份名", "January 2020 to December 2023", "January 2020 to December 2023"},
		{"月份名到至今", "Mar 2021 - Present", "Mar 2021 - Present"},
		{"年份区间", "2020-2023", "2020-2023"},
		{"年份区间带空格", "2020 - 2022", "2020 - 2022"},
		{"年份到至今", "2019 – Present", "2019 – Present"},
		{"数字月年区间", "01/2020-12/2023", "01/2020-12/2023"},
		// 裸年份到至今的模式优先级更高，月份前缀会被丢弃
		{"数字月年到至今", "06/2021 - Current", "2021 - Current"},
		{"长横线分隔", "Feb 2018 — Now", "Feb 2018 — Now"},
		{"未命中", "just some text 123", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractDuration(tc.text), "输入 %q 的提取结果与预期不符", tc.text)
		})
	}
}
