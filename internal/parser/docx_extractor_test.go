package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocxXMLToPlainText(t *testing.T) {
	// 1. 段落标签转换为换行
	xml := `<w:p><w:r><w:t>John Smith</w:t></w:r></w:p><w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>`
	text := docxXMLToPlainText(xml)
	assert.Equal(t, "John Smith\nSoftware Engineer", text, "段落应该转换为换行")

	// 2. 显式换行标签也应转换为换行
	xml = `<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>`
	text = docxXMLToPlainText(xml)
	assert.Equal(t, "Line one\nLine two", text, "w:br应该转换为换行")

	// 3. XML实体还原
	xml = `<w:p><w:r><w:t>R&amp;D &lt;Team&gt;</w:t></w:r></w:p>`
	text = docxXMLToPlainText(xml)
	assert.Equal(t, "R&D <Team>", text, "XML实体应该被还原")

	// 4. 多余空行压缩为单个空行
	xml = `<w:p><w:r><w:t>A</w:t></w:r></w:p><w:p></w:p><w:p></w:p><w:p></w:p><w:p><w:r><w:t>B</w:t></w:r></w:p>`
	text = docxXMLToPlainText(xml)
	assert.Equal(t, "A\n\nB", text, "连续空行应该压缩为一个")
}

func TestNewDocxTextExtractor(t *testing.T) {
	extractor := NewDocxTextExtractor()
	assert.NotNil(t, extractor, "创建的DOCX提取器不应为nil")
	assert.NotNil(t, extractor.logger, "DOCX提取器应该有默认的logger")
}

func TestDocxExtractFromInvalidBytes(t *testing.T) {
	extractor := NewDocxTextExtractor()

	// 非zip数据应该返回解析错误
	_, _, err := extractor.ExtractTextFromBytes(context.Background(), []byte("not a docx file"), "bad.docx", nil)
	assert.Error(t, err, "解析非法DOCX应该返回错误")
}
