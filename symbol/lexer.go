package symbol

import (
	"strings"
)

// tokenKind classifies the tokens of a SystemVerilog source.
type tokenKind int

const (
	TOKEN_EOF     = tokenKind(0)
	TOKEN_IDENT   = tokenKind(1) // identifier or keyword
	TOKEN_NUMBER  = tokenKind(2) // number, sized literals lexed whole
	TOKEN_STRING  = tokenKind(3) // "..."
	TOKEN_COMMENT = tokenKind(4) // // or /* */
	TOKEN_PUNCT   = tokenKind(5) // any other single character
)

type token struct {
	kind   tokenKind
	text   string
	lineNo int
}

// lexer splits a SystemVerilog source into tokens. It knows just enough of
// the language to find localparam declarations.
type lexer struct {
	src     string
	pos     int
	lineNo  int
	pending *token
}

func newLexer(src string) *lexer {
	return &lexer{src: src, lineNo: 1}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || c == '$' || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// isLiteralDigit accepts the digits of any based literal, including the
// four-state x, z and ? digits.
func isLiteralDigit(c byte) bool {
	return c == '_' || c == '?' || isDigit(c) ||
		(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') ||
		c == 'x' || c == 'X' || c == 'z' || c == 'Z'
}

func isBase(c byte) bool {
	switch c {
	case 'b', 'B', 'o', 'O', 'd', 'D', 'h', 'H':
		return true
	}
	return false
}

// skipSpace returns the position of the next non-space character at or
// after pos, and the number of newlines skipped.
func (lx *lexer) skipSpace(pos int) (next int, lines int) {
	for next = pos; next < len(lx.src) && isSpace(lx.src[next]); next++ {
		if lx.src[next] == '\n' {
			lines++
		}
	}
	return
}

// based lexes the '<base><digits> tail of a based literal starting at the
// quote. The whitespace Verilog allows around the base is dropped.
func (lx *lexer) based(quote int) (text string, next int, lines int, ok bool) {
	pos := quote + 1
	if pos < len(lx.src) && (lx.src[pos] == 's' || lx.src[pos] == 'S') {
		pos++
	}
	if pos >= len(lx.src) || !isBase(lx.src[pos]) {
		return
	}
	base := lx.src[quote : pos+1]

	start, lines := lx.skipSpace(pos + 1)
	end := start
	for end < len(lx.src) && isLiteralDigit(lx.src[end]) {
		end++
	}

	text = base + lx.src[start:end]
	next = end
	ok = true
	return
}

// unread pushes tok back, to be returned by the next call to next.
func (lx *lexer) unread(tok token) {
	lx.pending = &tok
}

// next returns the next token.
func (lx *lexer) next() (tok token) {
	if lx.pending != nil {
		tok = *lx.pending
		lx.pending = nil
		return
	}

	var lines int
	lx.pos, lines = lx.skipSpace(lx.pos)
	lx.lineNo += lines

	tok.lineNo = lx.lineNo
	if lx.pos >= len(lx.src) {
		tok.kind = TOKEN_EOF
		return
	}

	src := lx.src
	start := lx.pos
	c := src[start]

	switch {
	case strings.HasPrefix(src[start:], "//"):
		end := strings.IndexByte(src[start:], '\n')
		if end < 0 {
			end = len(src) - start
		}
		lx.pos = start + end
		tok.kind = TOKEN_COMMENT
	case strings.HasPrefix(src[start:], "/*"):
		end := strings.Index(src[start+2:], "*/")
		if end < 0 {
			lx.pos = len(src)
		} else {
			lx.pos = start + 2 + end + 2
		}
		tok.kind = TOKEN_COMMENT
	case c == '"':
		pos := start + 1
		for pos < len(src) && src[pos] != '"' && src[pos] != '\n' {
			if src[pos] == '\\' {
				pos++
			}
			pos++
		}
		if pos < len(src) && src[pos] == '"' {
			pos++
		}
		lx.pos = min(pos, len(src))
		tok.kind = TOKEN_STRING
	case isIdentStart(c):
		pos := start + 1
		for pos < len(src) && isIdent(src[pos]) {
			pos++
		}
		lx.pos = pos
		tok.kind = TOKEN_IDENT
	case isDigit(c):
		pos := start + 1
		for pos < len(src) && (isDigit(src[pos]) || src[pos] == '_') {
			pos++
		}
		tok.kind = TOKEN_NUMBER
		tok.text = src[start:pos]
		lx.pos = pos

		quote, lines := lx.skipSpace(pos)
		if quote < len(src) && src[quote] == '\'' {
			tail, next, more, ok := lx.based(quote)
			if ok {
				tok.text += tail
				lx.pos = next
				lx.lineNo += lines + more
			}
		}
		return
	case c == '\'':
		tail, next, lines, ok := lx.based(start)
		if ok {
			tok.kind = TOKEN_NUMBER
			tok.text = tail
			lx.pos = next
			lx.lineNo += lines
			return
		}
		lx.pos = start + 1
		tok.kind = TOKEN_PUNCT
	default:
		lx.pos = start + 1
		tok.kind = TOKEN_PUNCT
	}

	tok.text = src[start:lx.pos]
	lx.lineNo += strings.Count(tok.text, "\n")

	return
}
