// Package conv renders assistant markdown replies into the HTML subset
// Telegram accepts.
package conv

import (
	"bytes"
	"regexp"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags | html.HrefTargetBlank
	tgPolicy   = bluemonday.NewPolicy()

	headingRe  = regexp.MustCompile(`(?m)^#{1,6}\s+(.+?)\s*#*\s*$`)
	bulletRe   = regexp.MustCompile(`(?m)^(\s*)[-*+]\s+`)
	numberedRe = regexp.MustCompile(`(?m)^(\s*)(\d+)\.\s+`)
)

func init() {
	// Allowed tags https://core.telegram.org/bots/api#html-style
	tgPolicy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	tgPolicy.AllowAttrs("href").OnElements("a")
	tgPolicy.AllowAttrs("class").OnElements("code")
}

// MarkdownToTelegramHTML renders markdown and strips every tag Telegram
// would reject. Headings and list markers have no allowed tag, so they
// are rewritten to bold text and glyph bullets before rendering.
func MarkdownToTelegramHTML(md []byte) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(normalize(md)), renderer)

	return string(tgPolicy.SanitizeBytes(unsafeHTML))
}

// normalize keeps list and heading structure readable after the
// sanitizer drops their tags. Fenced code blocks are left untouched.
func normalize(md []byte) []byte {
	parts := bytes.Split(md, []byte("```"))
	for i := 0; i < len(parts); i += 2 {
		parts[i] = headingRe.ReplaceAll(parts[i], []byte("**${1}**"))
		parts[i] = bulletRe.ReplaceAll(parts[i], []byte("${1}• "))
		parts[i] = numberedRe.ReplaceAll(parts[i], []byte("${1}${2}\\. "))
	}
	return bytes.Join(parts, []byte("```"))
}
