package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLocateSectionBasic 验证章节定位的基本行为
func TestLocateSectionBasic(t *testing.T) {
	text := "John Smith\n\nSKILLS\nPython, Go\nDocker\n\nEXPERIENCE\nEngineer\nAcme"

	// 1. 命中标题行，正文到下一个章节标题为止
	body := LocateSection(text, []string{"skills"})
	assert.Contains(t, body, "Python, Go", "技能章节正文应包含技能行")
	assert.Contains(t, body, "Docker")
	assert.NotContains(t, body, "Engineer", "下一章节的内容不应混入")

	// 2. 未找到任何别名时返回空字符串
	assert.Equal(t, "", LocateSection(text, []string{"certifications"}))

	// 3. 只使用第一个命中的别名
	body = LocateSection(text, []string{"experience", "skills"})
	assert.Contains(t, body, "Engineer")
	assert.NotContains(t, body, "Python")
}

// TestLocateSectionHeaderForms 验证标题行的多种写法都能命中
func TestLocateSectionHeaderForms(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"精确匹配", "SKILLS\nPython"},
		{"冒号后缀", "Skills:\nPython"},
		{"空格后缀", "Skills & Tools\nPython"},
		{"短行内子串", "Technical Skills Overview\nPython"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := LocateSection(tc.text, []string{"skills"})
			assert.Contains(t, body, "Python", "标题写法 %q 应能命中", tc.name)
		})
	}

	// 超过50字符的长行即使包含别名也视为正文
	long := "I have many skills that I have developed over a very long career\nPython"
	assert.Equal(t, "", LocateSection(long, []string{"skills"}))
}

// TestLocateSectionStopsAtReferences 验证证明人章节终止累积
func TestLocateSectionStopsAtReferences(t *testing.T) {
	text := "SKILLS\nPython\nReferences\nAvailable upon request"
	body := LocateSection(text, []string{"skills"})
	assert.Contains(t, body, "Python")
	assert.NotContains(t, body, "Available upon request", "证明人之后的内容不应泄漏进章节正文")
}

// TestIsReferenceTerminator 验证终止行识别规则
func TestIsReferenceTerminator(t *testing.T) {
	assert.True(t, IsReferenceTerminator("References"))
	assert.True(t, IsReferenceTerminator("REFEREES:"))
	assert.True(t, IsReferenceTerminator("Reference"))
	assert.True(t, IsReferenceTerminator("References available on demand"))
	assert.True(t, IsReferenceTerminator("Available upon request"))
	assert.False(t, IsReferenceTerminator("Referred 30% more candidates"))
	assert.False(t, IsReferenceTerminator(""))
}
