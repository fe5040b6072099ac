// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package symbol

import (
	"io"
	"log"
	"strings"

	"github.com/ezrec/microrom/bits"
	"github.com/ezrec/microrom/diag"
)

// declState is the state of the localparam declaration parser.
type declState int

const (
	DECL_TYPE   = declState(0) // after 'localparam'
	DECL_RANGE  = declState(1) // inside [msb:lsb]
	DECL_NAME   = declState(2) // expecting a name
	DECL_ASSIGN = declState(3) // expecting '='
	DECL_VALUE  = declState(4) // value tokens up to ',' or ';'
	DECL_SKIP   = declState(5) // resynchronizing on ';' after an error
	DECL_DONE   = declState(6)
)

// Data type keywords that may precede the range or name of a localparam.
var typeKeyword = map[string]bool{
	"logic":    true,
	"bit":      true,
	"reg":      true,
	"wire":     true,
	"byte":     true,
	"int":      true,
	"integer":  true,
	"shortint": true,
	"longint":  true,
	"signed":   true,
	"unsigned": true,
}

// entry is one NAME = VALUE term of a declaration.
type entry struct {
	lineNo int
	name   string
	value  string
}

// declaration is a single localparam statement.
type declaration struct {
	lineNo  int
	entries []entry
	comment *token
	err     error
}

// retained is true if the declaration's first name has the prefix.
func (decl *declaration) retained(prefix string) bool {
	return len(decl.entries) > 0 && strings.HasPrefix(decl.entries[0].name, prefix)
}

// parseDeclaration consumes the tokens of a localparam statement, up to and
// including its terminating ';'.
func parseDeclaration(lx *lexer, keyword token) (decl *declaration) {
	decl = &declaration{lineNo: keyword.lineNo}

	fail := func(tok token, err error) {
		if decl.err == nil {
			decl.err = &ErrSyntax{LineNo: tok.lineNo, Line: tok.text, Err: err}
		}
	}

	state := DECL_TYPE
	depth := 0
	for state != DECL_DONE {
		tok := lx.next()

		switch {
		case tok.kind == TOKEN_EOF:
			fail(keyword, ErrDeclarationUnterminated)
			return
		case tok.kind == TOKEN_COMMENT:
			if decl.comment == nil {
				decl.comment = &tok
			}
			continue
		case tok.kind == TOKEN_IDENT && tok.text == "localparam":
			lx.unread(tok)
			fail(keyword, ErrDeclarationUnterminated)
			return
		}

		punct := ""
		if tok.kind == TOKEN_PUNCT {
			punct = tok.text
		}

		switch state {
		case DECL_TYPE:
			switch {
			case tok.kind == TOKEN_IDENT && typeKeyword[tok.text]:
			case punct == "[":
				state = DECL_RANGE
			case tok.kind == TOKEN_IDENT:
				decl.entries = append(decl.entries, entry{lineNo: tok.lineNo, name: tok.text})
				state = DECL_ASSIGN
			default:
				fail(tok, ErrDeclarationSyntax)
				state = DECL_SKIP
			}
		case DECL_RANGE:
			if punct == "]" {
				state = DECL_NAME
			}
		case DECL_NAME:
			if tok.kind == TOKEN_IDENT {
				decl.entries = append(decl.entries, entry{lineNo: tok.lineNo, name: tok.text})
				state = DECL_ASSIGN
			} else {
				fail(tok, ErrDeclarationSyntax)
				state = DECL_SKIP
			}
		case DECL_ASSIGN:
			if punct == "=" {
				state = DECL_VALUE
				depth = 0
			} else {
				fail(tok, ErrDeclarationSyntax)
				state = DECL_SKIP
			}
		case DECL_VALUE:
			switch {
			case depth == 0 && punct == ",":
				state = DECL_NAME
				continue
			case depth == 0 && punct == ";":
				state = DECL_DONE
				continue
			case punct == "(" || punct == "{" || punct == "[":
				depth++
			case punct == ")" || punct == "}" || punct == "]":
				depth--
			}
			last := &decl.entries[len(decl.entries)-1]
			last.value += tok.text
		}

		if state == DECL_SKIP && punct == ";" {
			state = DECL_DONE
		}
	}

	return
}

// Builder extracts the control word fields declared as localparams in a
// SystemVerilog source.
type Builder struct {
	Verbose bool   // If set, logs each symbol as it is defined.
	Prefix  string // Only declarations whose first name has this prefix are kept.
	Source  string // Name of the source, used in warnings.
}

// Parse reads a SystemVerilog source and builds the symbol table of all
// retained localparam declarations.
//
// A value that is not a sized literal is reported as a warning and the
// symbol is skipped. A comment inside a retained declaration, or a retained
// declaration missing its ';', is an error.
func (b *Builder) Parse(input io.Reader) (tab *Table, warnings []diag.Warning, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	warn := func(lineNo int, err error) {
		warnings = append(warnings, diag.Warning{Source: b.Source, LineNo: lineNo, Err: err})
	}

	symbols := make(map[string]bits.String)

	lx := newLexer(string(data))
	for tok := lx.next(); tok.kind != TOKEN_EOF; tok = lx.next() {
		if tok.kind != TOKEN_IDENT || tok.text != "localparam" {
			continue
		}

		decl := parseDeclaration(lx, tok)
		if !decl.retained(b.Prefix) {
			continue
		}

		if decl.err != nil {
			err = decl.err
			return
		}

		if decl.comment != nil {
			err = &ErrSyntax{LineNo: decl.comment.lineNo, Line: decl.comment.text, Err: ErrDeclarationComment}
			return
		}

		for _, ent := range decl.entries {
			name := strings.TrimPrefix(ent.name, b.Prefix)

			value, literr := bits.ParseLiteral(ent.value)
			if literr != nil {
				warn(ent.lineNo, &ErrSymbolValue{Name: ent.name, Value: ent.value, Err: literr})
				continue
			}

			if _, ok := symbols[name]; ok {
				warn(ent.lineNo, ErrSymbolRedefined(name))
			}

			if b.Verbose {
				log.Printf("%v:%v: %v = %v", b.Source, ent.lineNo, name, value)
			}

			symbols[name] = value
		}
	}

	tab = &Table{symbols: symbols}

	return
}
