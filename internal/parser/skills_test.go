package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractSkillsBasic 验证技能拆分、去重和顺序保持
func TestExtractSkillsBasic(t *testing.T) {
	body := "Python, Go, SQL\nDocker; Kubernetes | Terraform\nPython, Go"

	skills := ExtractSkills(body, 30)

	assert.Equal(t, []string{"Python", "Go", "SQL", "Docker", "Kubernetes", "Terraform"}, skills,
		"技能应按首次出现顺序去重")
}

// TestExtractSkillsStripsBulletsAndLabels 验证项目符号和标签前缀被剥离
func TestExtractSkillsStripsBulletsAndLabels(t *testing.T) {
	body := "- Python, Go\n• Rust\nSkills: SQL, NoSQL\nTechnologies: Kafka"

	skills := ExtractSkills(body, 30)

	assert.Equal(t, []string{"Python", "Go", "Rust", "SQL", "NoSQL", "Kafka"}, skills)
}

// TestExtractSkillsDropsNoise 验证过短、过长和填充词片段被丢弃
func TestExtractSkillsDropsNoise(t *testing.T) {
	long := strings.Repeat("x", 60)
	body := fmt.Sprintf("Python, a, and, with, using, %s, Go", long)

	skills := ExtractSkills(body, 30)

	assert.Equal(t, []string{"Python", "Go"}, skills)
}

// TestExtractSkillsStopsAtReferences 验证证明人行之后的内容不进入技能列表
func TestExtractSkillsStopsAtReferences(t *testing.T) {
	body := "Python, Go\nReferences\nAvailable upon request\nSecretSkill"

	skills := ExtractSkills(body, 30)

	assert.Equal(t, []string{"Python", "Go"}, skills, "证明人之后的内容不应出现在技能中")
}

// TestExtractSkillsStopsAtNonSkillSection 验证非技能章节标题终止扫描
func TestExtractSkillsStopsAtNonSkillSection(t *testing.T) {
	body := "Python, Go\nInterests\nHiking, Chess"

	skills := ExtractSkills(body, 30)

	assert.Equal(t, []string{"Python", "Go"}, skills)
}

// TestExtractSkillsCap 验证技能数量上限
func TestExtractSkillsCap(t *testing.T) {
	var parts []string
	for i := 0; i < 50; i++ {
		parts = append(parts, fmt.Sprintf("Skill%02d", i))
	}
	body := strings.Join(parts, ", ")

	skills := ExtractSkills(body, 30)

	assert.Len(t, skills, 30, "技能数量不应超过上限")
	assert.Equal(t, "Skill00", skills[0])
	assert.Equal(t, "Skill29", skills[29])
}
