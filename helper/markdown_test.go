package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	html := string(RenderMarkdown("# Title\n\nSome **bold** text."))
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestRenderMarkdownPlainText(t *testing.T) {
	html := string(RenderMarkdown("Просто текст"))
	assert.Contains(t, html, "Просто текст")
}
