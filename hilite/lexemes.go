package hilite

import (
	"bytes"
	"unicode/utf8"
)

// Keywords is the closed set of reserved words.
var Keywords = []string{
	"break", "default", "func", "interface", "select",
	"case", "defer", "go", "map", "struct",
	"chan", "else", "goto", "package", "switch",
	"const", "fallthrough", "if", "range", "type",
	"continue", "for", "import", "return", "var",
}

var keywordSet = func() map[string]bool {
	set := make(map[string]bool, len(Keywords))
	for _, kw := range Keywords {
		set[kw] = true
	}
	return set
}()

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
func isOctal(c byte) bool { return '0' <= c && c <= '7' }
func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
func isWord(c byte) bool { return isLetter(c) || isDigit(c) || c == '_' }
func isLineEnd(c byte) bool { return c == '\n' || c == '\r' }
func isHex(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// wordStart reports whether pos is not preceded by a word byte.
func wordStart(src []byte, pos int) bool {
	return pos == 0 || !isWord(src[pos-1])
}

// wordEnd reports whether pos is at the end of input or at a non-word byte.
func wordEnd(src []byte, pos int) bool {
	return pos >= len(src) || !isWord(src[pos])
}

func at(src []byte, pos int) byte {
	if pos < 0 || pos >= len(src) {
		return 0
	}
	return src[pos]
}

func hasPrefixAt(src []byte, pos int, prefix string) bool {
	return pos <= len(src) && bytes.HasPrefix(src[pos:], []byte(prefix))
}

func matchComment(src []byte, pos int) int {
	switch {
	case hasPrefixAt(src, pos, "//"):
		end := pos + 2
		for end < len(src) && !isLineEnd(src[end]) {
			end++
		}
		return end - pos
	case hasPrefixAt(src, pos, "/*"):
		i := bytes.Index(src[pos+2:], []byte("*/"))
		if i < 0 {
			return 0
		}
		return i + 4
	}
	return 0
}

func matchString(src []byte, pos int) int {
	switch at(src, pos) {
	case '`':
		i := bytes.IndexByte(src[pos+1:], '`')
		if i < 0 {
			return 0
		}
		return i + 2
	case '"':
		return matchQuoted(src, pos)
	case '\'':
		return matchChar(src, pos)
	}
	return 0
}

// matchQuoted ends a double-quoted literal at the first unescaped quote on
// the same line. When the line ends first, the literal is closed by the
// quote of its last \" pair, if any.
func matchQuoted(src []byte, pos int) int {
	lastEscaped := -1
	for i := pos + 1; i < len(src); {
		c := src[i]
		switch {
		case c == '"':
			return i + 1 - pos
		case c == '\\' && at(src, i+1) == '"':
			lastEscaped = i + 1
			i += 2
		case isLineEnd(c):
			i = len(src)
		default:
			i++
		}
	}
	if lastEscaped < 0 {
		return 0
	}
	return lastEscaped + 1 - pos
}

func matchChar(src []byte, pos int) int {
	if at(src, pos+1) == '\\' {
		if n := charBody(src, pos+2); n > 0 {
			return n - pos
		}
	}
	if n := charBody(src, pos+1); n > 0 {
		return n - pos
	}
	return 0
}

// charBody reads one character and the closing quote starting at pos and
// returns the offset just past the quote, or 0.
func charBody(src []byte, pos int) int {
	if pos >= len(src) || isLineEnd(src[pos]) {
		return 0
	}
	_, size := utf8.DecodeRune(src[pos:])
	if at(src, pos+size) != '\'' {
		return 0
	}
	return pos + size + 1
}

func wordRun(src []byte, pos int) int {
	end := pos
	for end < len(src) && isWord(src[end]) {
		end++
	}
	return end
}

func matchKeyword(src []byte, pos int) int {
	if !wordStart(src, pos) {
		return 0
	}
	end := wordRun(src, pos)
	if !keywordSet[string(src[pos:end])] {
		return 0
	}
	return end - pos
}

func matchIdentifier(src []byte, pos int) int {
	if !wordStart(src, pos) || pos >= len(src) {
		return 0
	}
	if c := src[pos]; !isLetter(c) && c != '_' {
		return 0
	}
	return wordRun(src, pos) - pos
}

func matchOperator(src []byte, pos int) int {
	c := at(src, pos)
	switch {
	case hasPrefixAt(src, pos, "<-"):
		return 2
	case isPairOp(c) && isPairOp(at(src, pos+1)):
		return 2
	}

	n := 0
	switch {
	case hasPrefixAt(src, pos, ">>"), hasPrefixAt(src, pos, "<<"), hasPrefixAt(src, pos, "&^"):
		n = 2
	case bytes.IndexByte([]byte("+-*/%&|^=<>!"), c) >= 0:
		n = 1
	}
	if n > 0 {
		if at(src, pos+n) == '=' {
			n++
		}
		return n
	}

	switch {
	case c == '~':
		return 1
	case hasPrefixAt(src, pos, ":="):
		return 2
	}
	return 0
}

func isPairOp(c byte) bool {
	return c == '+' || c == '-' || c == '|' || c == '&'
}

func matchDelimiter(src []byte, pos int) int {
	if hasPrefixAt(src, pos, "...") {
		return 3
	}
	c := at(src, pos)
	if bytes.IndexByte([]byte("()[]{},;.:"), c) >= 0 {
		return 1
	}
	return 0
}

func matchError(src []byte, pos int) int {
	end := pos
	for end < len(src) && !isSpace(src[end]) {
		end++
	}
	return end - pos
}
