// Package duetime turns free text such as "buy milk tomorrow at 9" into an
// absolute due moment and renders that moment for display.
package duetime

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/olebedev/when/rules/ru"
)

// Parser recognises English and Russian date expressions.
type Parser struct {
	w *when.Parser
}

func NewParser() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(ru.All...)
	w.Add(common.All...)
	w.Add(bareHour())
	return &Parser{w: w}
}

// Parse resolves text against reference read in the fixed zone offset
// (seconds east of UTC). A clock time that already passed today resolves to
// its next occurrence. ok is false when no expression is found or the
// resolved moment is still not after reference. span is the matched
// substring of text.
func (p *Parser) Parse(text string, reference time.Time, offset int) (at time.Time, span string, ok bool) {
	base := reference.In(time.FixedZone("", offset)).Truncate(time.Second)

	r, err := p.w.Parse(text, base)
	if err != nil || r == nil {
		return time.Time{}, "", false
	}

	span = r.Text
	if r.Index >= 0 && r.Index+len(r.Text) <= len(text) {
		span = text[r.Index : r.Index+len(r.Text)]
	}

	at = forwardDate(r.Time, reference, span)
	if !at.After(reference) {
		return time.Time{}, "", false
	}
	return at.UTC(), span, true
}

// StripSpan removes span from text and tidies whitespace. When nothing is
// left the trimmed original is returned.
func StripSpan(text, span string) string {
	trimmed := strings.TrimSpace(text)
	if span == "" {
		return trimmed
	}
	i := strings.Index(text, span)
	if i < 0 {
		return trimmed
	}
	rest := strings.Join(strings.Fields(text[:i]+" "+text[i+len(span):]), " ")
	rest = strings.TrimRight(rest, " ,.;:-")
	if rest == "" {
		return trimmed
	}
	return rest
}
