package usecase

import (
	"html"
	"regexp"
	"strings"

	"uxo-chatbot/internal/document"
	"uxo-chatbot/pkg/vntext"
)

var (
	tagRe    = regexp.MustCompile(`<[^>]*>`)
	scriptRe = regexp.MustCompile(`(?i)(javascript:|window\.|var\s+)`)
	// Footer boilerplate from crawled pages; each match runs to the end of its line.
	noiseRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(follow us|subscribe|contact us|terms of use|privacy policy|all rights reserved|sitemap).*`),
		regexp.MustCompile(`©.*\d{4}.*`),
	}
	spaceRe     = regexp.MustCompile(`[ \t\f\v\r\x{00a0}]+`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)

	dashReplacer = strings.NewReplacer("–", "-", "—", "-")
)

// docTypeRules are checked in order; the first rule with a whole-word hit wins.
var docTypeRules = []struct {
	docType  string
	keywords []string
}{
	{document.TypeSafetyGuidelines, []string{"safety", "an toàn", "hướng dẫn"}},
	{document.TypeContactInfo, []string{"hotline", "liên hệ", "contact"}},
	{document.TypeUXOInfo, []string{"bom", "mìn", "uxo", "ordnance"}},
}

// cleanText strips markup and boilerplate. Paragraph breaks survive so the
// splitter can prefer them.
func cleanText(text string) string {
	text = tagRe.ReplaceAllString(text, "")
	text = scriptRe.ReplaceAllString(text, "")
	for _, re := range noiseRes {
		text = re.ReplaceAllString(text, "")
	}
	text = dashReplacer.Replace(html.UnescapeString(text))

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
	}
	text = blankRunsRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(vntext.NFC(text))
}

func classifyDocument(text string) string {
	for _, rule := range docTypeRules {
		if vntext.ContainsAnyPhrase(text, rule.keywords) {
			return rule.docType
		}
	}
	return document.TypeGeneral
}
