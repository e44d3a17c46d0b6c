package ai

import (
	"strings"
	"unicode"
)

// Sanitize cleans raw model output into presentable text. Model responses
// arrive polluted in predictable ways: SDK content wrappers stringified
// into the text (TextBlock(text='...')), bracketed fragment lists, outer
// quote pairs, echoed instruction preambles, literal \n escapes and
// messy whitespace.
//
// Passes run in order: unwrap stringified artifacts, strip leading
// preambles, collapse escape sequences and whitespace, then rebuild
// paragraph breaks after sentence periods unless markup is preserved.
// Each unwrap pass only fires when the whole string is a recognized
// artifact, and runs to fixpoint, which makes Sanitize idempotent.
//
// Sanitize never fails. Anything it cannot parse passes through with
// whitespace cleanup only.
func Sanitize(raw string, preserveMarkup bool) string {
	text := unwrapAll(raw)
	text = stripPreambles(text)
	text = collapseEscapes(text)
	text = strings.Join(strings.Fields(text), " ")
	if !preserveMarkup {
		text = insertParagraphBreaks(text)
	}
	return text
}

// unwrapAll peels stringified SDK artifacts while the entire string is
// one: a wrapper call, a bracketed list of wrappers, or a quote pair.
func unwrapAll(s string) string {
	for {
		t := strings.TrimSpace(s)
		u, ok := unwrapOnce(t)
		if !ok {
			return t
		}
		s = u
	}
}

func unwrapOnce(t string) (string, bool) {
	if t == "" {
		return "", false
	}
	sc := &scanner{s: t}
	switch {
	case t[0] == '[':
		return sc.wholeList()
	case t[0] == '\'' || t[0] == '"':
		v, ok := sc.quoted()
		if ok && sc.atEnd() {
			return v, true
		}
	default:
		return sc.wholeWrapper()
	}
	return "", false
}

// scanner is a cursor over one candidate artifact string.
type scanner struct {
	s string
	i int
}

func (sc *scanner) atEnd() bool {
	sc.skipSpace()
	return sc.i >= len(sc.s)
}

func (sc *scanner) skipSpace() {
	for sc.i < len(sc.s) && (sc.s[sc.i] == ' ' || sc.s[sc.i] == '\t' || sc.s[sc.i] == '\n' || sc.s[sc.i] == '\r') {
		sc.i++
	}
}

func (sc *scanner) consume(c byte) bool {
	if sc.i < len(sc.s) && sc.s[sc.i] == c {
		sc.i++
		return true
	}
	return false
}

func (sc *scanner) peek() byte {
	if sc.i < len(sc.s) {
		return sc.s[sc.i]
	}
	return 0
}

func (sc *scanner) ident() string {
	start := sc.i
	for sc.i < len(sc.s) {
		c := sc.s[sc.i]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || sc.i > start && c >= '0' && c <= '9' {
			sc.i++
			continue
		}
		break
	}
	return sc.s[start:sc.i]
}

// quoted reads a single- or double-quoted string with backslash escapes,
// decoding \n, \t, \r and quote escapes to their characters.
func (sc *scanner) quoted() (string, bool) {
	q := sc.peek()
	if q != '\'' && q != '"' {
		return "", false
	}
	sc.i++
	var b strings.Builder
	for sc.i < len(sc.s) {
		c := sc.s[sc.i]
		switch c {
		case '\\':
			if sc.i+1 >= len(sc.s) {
				return "", false
			}
			sc.i++
			switch e := sc.s[sc.i]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\'', '"', '\\':
				b.WriteByte(e)
			default:
				b.WriteByte('\\')
				b.WriteByte(e)
			}
			sc.i++
		case q:
			sc.i++
			return b.String(), true
		default:
			b.WriteByte(c)
			sc.i++
		}
	}
	return "", false
}

// bareValue skips an unquoted field value (None, numbers, nested
// structures) up to the next comma or closing paren at depth zero.
func (sc *scanner) bareValue() bool {
	depth := 0
	start := sc.i
	for sc.i < len(sc.s) {
		c := sc.s[sc.i]
		switch c {
		case '\'', '"':
			if _, ok := sc.quoted(); !ok {
				return false
			}
			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				return sc.i > start
			}
			depth--
		case ',':
			if depth == 0 {
				return sc.i > start
			}
		}
		sc.i++
	}
	return false
}

// wrapper parses Ident(field=value, ...) and returns the text field.
// The fields may come in any order; only text must be present.
func (sc *scanner) wrapper() (string, bool) {
	if sc.ident() == "" {
		return "", false
	}
	if !sc.consume('(') {
		return "", false
	}
	text, found := "", false
	for {
		sc.skipSpace()
		name := sc.ident()
		if name == "" {
			return "", false
		}
		sc.skipSpace()
		if !sc.consume('=') {
			return "", false
		}
		sc.skipSpace()
		if c := sc.peek(); c == '\'' || c == '"' {
			v, ok := sc.quoted()
			if !ok {
				return "", false
			}
			if name == "text" {
				text, found = v, true
			}
		} else if !sc.bareValue() {
			return "", false
		}
		sc.skipSpace()
		if sc.consume(',') {
			continue
		}
		if sc.consume(')') {
			break
		}
		return "", false
	}
	return text, found
}

func (sc *scanner) wholeWrapper() (string, bool) {
	text, ok := sc.wrapper()
	if !ok || !sc.atEnd() {
		return "", false
	}
	return text, true
}

// wholeList parses [elem, elem, ...] where elements are wrappers or
// quoted strings, joining their texts with single spaces.
func (sc *scanner) wholeList() (string, bool) {
	if !sc.consume('[') {
		return "", false
	}
	var parts []string
	for {
		sc.skipSpace()
		if sc.consume(']') {
			break
		}
		var v string
		var ok bool
		if c := sc.peek(); c == '\'' || c == '"' {
			v, ok = sc.quoted()
		} else {
			v, ok = sc.wrapper()
		}
		if !ok {
			return "", false
		}
		if v != "" {
			parts = append(parts, v)
		}
		sc.skipSpace()
		if sc.consume(',') {
			continue
		}
		if sc.consume(']') {
			break
		}
		return "", false
	}
	if !sc.atEnd() {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// Leading phrases models echo back despite instructions. Matched
// case-insensitively at the very start, colon required.
var preamblePrefixes = []string{
	"sure, here is the translation",
	"sure, here's the translation",
	"certainly, here is the translation",
	"here is the translated text",
	"here's the translated text",
	"here is the translation",
	"here's the translation",
	"here is your translation",
	"here is the analysis",
	"here's the analysis",
	"translated text",
	"translation",
	"analysis",
}

func stripPreambles(s string) string {
	for {
		t, ok := stripPreambleOnce(s)
		if !ok {
			return s
		}
		s = t
	}
}

func stripPreambleOnce(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, prefix := range preamblePrefixes {
		if !strings.HasPrefix(lower, prefix) {
			continue
		}
		rest := s[len(prefix):]
		trimmed := strings.TrimLeft(rest, " ")
		if !strings.HasPrefix(trimmed, ":") {
			continue
		}
		return strings.TrimLeft(trimmed[1:], " \t\n\r"), true
	}
	return s, false
}

var escapeReplacer = strings.NewReplacer(`\n`, " ", `\t`, " ")

// collapseEscapes turns literal two-character escape sequences into
// spaces. Real control characters are handled by the whitespace pass.
func collapseEscapes(s string) string {
	return escapeReplacer.Replace(s)
}

// insertParagraphBreaks rebuilds paragraph structure lost in whitespace
// collapse: a period followed by a space and an uppercase letter starts a
// new paragraph. Misfires on abbreviations like "Dr. Smith" are accepted.
func insertParagraphBreaks(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if r == ' ' && i > 0 && runes[i-1] == '.' && i+1 < len(runes) && unicode.IsUpper(runes[i+1]) {
			b.WriteString("\n\n")
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
