package analysis

import (
	"regexp"
	"strings"
)

// Marker is the pair of strings wrapped around every flagged occurrence.
type Marker struct {
	Open  string
	Close string
}

// HTMLMarker is the default marker used by the HTTP surface.
var HTMLMarker = Marker{Open: "<mark>", Close: "</mark>"}

// Render wraps every case-insensitive occurrence of each phrase with HTMLMarker.
func Render(text string, highlights []string) string {
	return RenderWith(HTMLMarker, text, highlights)
}

// RenderWith wraps every occurrence with m.
func RenderWith(m Marker, text string, highlights []string) string {
	return RenderFunc(text, highlights, func(match string) string {
		return m.Open + match + m.Close
	})
}

// RenderFunc applies the phrases in order, so a phrase found inside an earlier
// match produces nested markup. Phrases are matched as literal text, and only
// against the message itself, never against markup added by a previous phrase.
// wrap receives each marked span with any nested markup already applied.
func RenderFunc(text string, highlights []string, wrap func(match string) string) string {
	spans := []span{{text: text}}
	for _, phrase := range highlights {
		if phrase == "" {
			continue
		}
		rx := regexp.MustCompile("(?i)" + regexp.QuoteMeta(phrase))
		spans = markSpans(spans, rx)
	}
	var b strings.Builder
	writeSpans(&b, spans, wrap)
	return b.String()
}

// span is either plain message text or a marked group of inner spans.
type span struct {
	text   string
	marked bool
	inner  []span
}

func markSpans(spans []span, rx *regexp.Regexp) []span {
	out := make([]span, 0, len(spans))
	for _, sp := range spans {
		if sp.marked {
			sp.inner = markSpans(sp.inner, rx)
			out = append(out, sp)
			continue
		}
		last := 0
		for _, loc := range rx.FindAllStringIndex(sp.text, -1) {
			if loc[0] > last {
				out = append(out, span{text: sp.text[last:loc[0]]})
			}
			out = append(out, span{marked: true, inner: []span{{text: sp.text[loc[0]:loc[1]]}}})
			last = loc[1]
		}
		if last < len(sp.text) {
			out = append(out, span{text: sp.text[last:]})
		}
	}
	return out
}

func writeSpans(b *strings.Builder, spans []span, wrap func(string) string) {
	for _, sp := range spans {
		if !sp.marked {
			b.WriteString(sp.text)
			continue
		}
		var inner strings.Builder
		writeSpans(&inner, sp.inner, wrap)
		b.WriteString(wrap(inner.String()))
	}
}
