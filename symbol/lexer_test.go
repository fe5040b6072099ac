package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lexAll(src string) (tokens []token) {
	lx := newLexer(src)
	for tok := lx.next(); tok.kind != TOKEN_EOF; tok = lx.next() {
		tokens = append(tokens, tok)
	}
	return
}

func TestLexer(t *testing.T) {
	assert := assert.New(t)

	src := "localparam [3:0] MICRO_FOO = 4 'd 5, // five\n" +
		"  MICRO_BAR = 'h1F; /* a\nblock */ x = \"a;b\";"

	expected := []token{
		{TOKEN_IDENT, "localparam", 1},
		{TOKEN_PUNCT, "[", 1},
		{TOKEN_NUMBER, "3", 1},
		{TOKEN_PUNCT, ":", 1},
		{TOKEN_NUMBER, "0", 1},
		{TOKEN_PUNCT, "]", 1},
		{TOKEN_IDENT, "MICRO_FOO", 1},
		{TOKEN_PUNCT, "=", 1},
		{TOKEN_NUMBER, "4'd5", 1},
		{TOKEN_PUNCT, ",", 1},
		{TOKEN_COMMENT, "// five", 1},
		{TOKEN_IDENT, "MICRO_BAR", 2},
		{TOKEN_PUNCT, "=", 2},
		{TOKEN_NUMBER, "'h1F", 2},
		{TOKEN_PUNCT, ";", 2},
		{TOKEN_COMMENT, "/* a\nblock */", 2},
		{TOKEN_IDENT, "x", 3},
		{TOKEN_PUNCT, "=", 3},
		{TOKEN_STRING, "\"a;b\"", 3},
		{TOKEN_PUNCT, ";", 3},
	}

	assert.Equal(expected, lexAll(src))
}

func TestLexer_Numbers(t *testing.T) {
	assert := assert.New(t)

	tokens := lexAll("36'h0 8'sb1010_1010 12\n'o17 8'(x)")
	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.text)
	}
	assert.Equal([]string{"36'h0", "8'sb1010_1010", "12'o17", "8", "'", "(", "x", ")"}, texts)
	assert.Equal(2, tokens[len(tokens)-1].lineNo)
}

func TestLexer_Unread(t *testing.T) {
	assert := assert.New(t)

	lx := newLexer("a b")
	tok := lx.next()
	assert.Equal("a", tok.text)
	lx.unread(tok)
	assert.Equal("a", lx.next().text)
	assert.Equal("b", lx.next().text)
	assert.Equal(TOKEN_EOF, lx.next().kind)
}

func TestLexer_Unterminated(t *testing.T) {
	assert := assert.New(t)

	tokens := lexAll("a /* never closed\n;")
	assert.Len(tokens, 2)
	assert.Equal(TOKEN_COMMENT, tokens[1].kind)

	tokens = lexAll("\"open\nb")
	assert.Len(tokens, 2)
	assert.Equal(TOKEN_STRING, tokens[0].kind)
	assert.Equal("b", tokens[1].text)
	assert.Equal(2, tokens[1].lineNo)
}
