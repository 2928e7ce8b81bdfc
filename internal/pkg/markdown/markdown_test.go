package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	html := Render("# Met Gala\n\nA **bold** look.")
	assert.True(t, strings.Contains(html, "<h1>Met Gala</h1>"))
	assert.True(t, strings.Contains(html, "<strong>bold</strong>"))
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(""))
}
