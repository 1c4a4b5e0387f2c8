package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractEmail 验证邮箱提取
func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "john@x.com", ExtractEmail("Contact: john@x.com / 555-123-4567"))
	assert.Equal(t, "jane.doe-1@sub.example.org", ExtractEmail("jane.doe-1@sub.example.org"))
	assert.Equal(t, "", ExtractEmail("no email here"), "未命中时返回空字符串")
}

// TestExtractPhone 验证电话提取：等效位数不少于10位
func TestExtractPhone(t *testing.T) {
	assert.Equal(t, "555-123-4567", ExtractPhone("Call 555-123-4567 today"))
	assert.Equal(t, "+1 (415) 555-0123", ExtractPhone("+1 (415) 555-0123"))
	assert.Equal(t, "", ExtractPhone("room 1234"), "位数不足不应命中")
	assert.Equal(t, "", ExtractPhone(""))
}

// TestExtractLinkedIn 验证LinkedIn主页提取
func TestExtractLinkedIn(t *testing.T) {
	assert.Equal(t, "https://www.linkedin.com/in/john-smith", ExtractLinkedIn("see https://www.linkedin.com/in/john-smith for details"))
	assert.Equal(t, "linkedin.com/in/jdoe", ExtractLinkedIn("linkedin.com/in/jdoe"))
	assert.Equal(t, "", ExtractLinkedIn("github.com/jdoe"))
}

// TestExtractName 验证姓名取全文第一个非空行
func TestExtractName(t *testing.T) {
	assert.Equal(t, "John Smith", ExtractName("\n\n  John Smith  \njohn@x.com"))
	assert.Equal(t, "", ExtractName("   \n\t\n"))
}
