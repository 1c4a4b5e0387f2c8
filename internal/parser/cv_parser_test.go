package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "John Smith\njohn@x.com\n555-123-4567\n\nSKILLS\nPython, Go, SQL\n\nEXPERIENCE\nSoftware Engineer\nAcme Corp\n2020 - 2022\nBuilt things.\n\nEDUCATION\nBS Computer Science\nMIT\n2019"

// TestParseFullResume 验证完整简历的端到端解析
func TestParseFullResume(t *testing.T) {
	p := NewCVParser()

	record := p.Parse(sampleResume)
	require.NotNil(t, record)

	// 1. 联系信息
	assert.Equal(t, "John Smith", record.PersonalInfo.Name)
	assert.Equal(t, "john@x.com", record.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", record.PersonalInfo.Phone)

	// 2. 技能
	assert.Equal(t, []string{"Python", "Go", "SQL"}, record.Skills)

	// 3. 工作经历
	require.Len(t, record.Experience, 1)
	assert.Equal(t, "Software Engineer", record.Experience[0].Title)
	assert.Equal(t, "Acme Corp", record.Experience[0].Company)
	assert.Equal(t, "2020 - 2022", record.Experience[0].Duration)

	// 4. 教育经历
	require.Len(t, record.Education, 1)
	assert.Equal(t, "2019", record.Education[0].Year)
}

// TestParseEmptyInput 验证空输入返回全空但完整的记录
func TestParseEmptyInput(t *testing.T) {
	p := NewCVParser()

	for _, input := range []string{"", "   \n\t\n  "} {
		record := p.Parse(input)
		require.NotNil(t, record, "空输入也应返回完整记录")
		assert.Equal(t, "", record.PersonalInfo.Name)
		assert.Equal(t, "", record.PersonalInfo.Email)
		assert.Equal(t, "", record.Summary)
		assert.NotNil(t, record.Experience, "切片字段不允许为nil")
		assert.NotNil(t, record.Skills)
		assert.NotNil(t, record.Education)
		assert.Empty(t, record.Experience)
		assert.Empty(t, record.Skills)
		assert.Empty(t, record.Education)
	}
}

// TestParseIdempotent 验证解析是纯函数：同一输入始终得到同一输出
func TestParseIdempotent(t *testing.T) {
	p := NewCVParser()

	first := p.Parse(sampleResume)
	second := p.Parse(sampleResume)

	assert.Equal(t, first, second)
}

// TestParseReferencesNeverLeak 验证证明人行之后的内容不出现在任何提取结果中
func TestParseReferencesNeverLeak(t *testing.T) {
	text := "Jane Doe\n\nSKILLS\nPython, Go\nReferences\nAvailable upon request\nLeakedSkill"

	record := NewCVParser().Parse(text)

	assert.Equal(t, []string{"Python", "Go"}, record.Skills)
	for _, skill := range record.Skills {
		assert.NotContains(t, skill, "Leaked")
	}
}

// TestParseMultiLineSummary 验证多行总结用空格连接为一个字符串
func TestParseMultiLineSummary(t *testing.T) {
	text := "Jane Doe\n\nSUMMARY\nExperienced engineer with a decade\nof distributed systems work.\n\nSKILLS\nGo"

	record := NewCVParser().Parse(text)

	assert.Equal(t, "Experienced engineer with a decade of distributed systems work.", record.Summary)
}

// TestParseLinkedIn 验证LinkedIn主页进入联系信息
func TestParseLinkedIn(t *testing.T) {
	text := "Jane Doe\nlinkedin.com/in/jane-doe\njane@x.com"

	record := NewCVParser().Parse(text)

	assert.Equal(t, "linkedin.com/in/jane-doe", record.PersonalInfo.LinkedIn)
	assert.Equal(t, "", record.PersonalInfo.Location, "位置信息不做提取，始终为空")
}

// TestParseCapsHold 验证任意输入下的条目上限不变式
func TestParseCapsHold(t *testing.T) {
	var b strings.Builder
	b.WriteString("Jane Doe\n\nEXPERIENCE\n")
	for i := 0; i < 12; i++ {
		b.WriteString("Engineer Role | SomeCo 2010 - 2012\n")
	}
	b.WriteString("\nEDUCATION\n")
	for i := 0; i < 8; i++ {
		b.WriteString("Some Degree | SomeSchool 2005\n")
	}

	record := NewCVParser().Parse(b.String())

	assert.LessOrEqual(t, len(record.Experience), 5)
	assert.LessOrEqual(t, len(record.Education), 3)
	assert.LessOrEqual(t, len(record.Skills), 30)
}

// TestParseCustomCaps 验证通过选项覆盖上限
func TestParseCustomCaps(t *testing.T) {
	var b strings.Builder
	b.WriteString("Jane Doe\n\nEXPERIENCE\n")
	for i := 0; i < 6; i++ {
		b.WriteString("Engineer Role | SomeCo 2010 - 2012\n")
	}

	record := NewCVParser(WithExperienceCap(2)).Parse(b.String())

	assert.Len(t, record.Experience, 2)
}
