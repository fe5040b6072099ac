package symbol

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/microrom/bits"
	"github.com/ezrec/microrom/diag"
)

func build(t *testing.T, src string) (tab *Table, warnings []diag.Warning, err error) {
	b := &Builder{Prefix: "MICRO_", Source: "s1c88.sv"}
	return b.Parse(strings.NewReader(src))
}

func TestBuilder(t *testing.T) {
	assert := assert.New(t)

	tab, warnings, err := build(t, "localparam MICRO_FOO = 4'd5;")
	assert.NoError(err)
	assert.Empty(warnings)
	assert.Equal(1, tab.Len())

	value, ok := tab.Lookup("FOO")
	assert.True(ok)
	assert.Equal(bits.String("0101"), value)

	_, ok = tab.Lookup("MICRO_FOO")
	assert.False(ok)
}

func TestBuilder_Formats(t *testing.T) {
	assert := assert.New(t)

	src := `
module s1c88(input clk);
	// Microinstruction fields
	localparam [1:0]
		MICRO_MOV_NONE  = 2'b00,
		MICRO_MOV_DATA  = 2'b1,
		MICRO_MOV_ADDR  = 2'd2;

	/* ALU ops; with a ';' in the comment */
	localparam logic [6:0] MICRO_ALU_ADD = 7'h1A , MICRO_ALU_SUB=7 'h 1B;

	localparam STATE_IDLE = 0;
	localparam [3:0] OTHER = 4'hF, MICRO_NOT_KEPT = 4'h1;

	always_ff @(posedge clk) begin
		if (x) y <= 1;
	end
	localparam MICRO_DONE = 1'b1;
endmodule
`

	tab, warnings, err := build(t, src)
	assert.NoError(err)
	assert.Empty(warnings)

	expected := map[string]bits.String{
		"MOV_NONE": "00",
		"MOV_DATA": "01",
		"MOV_ADDR": "10",
		"ALU_ADD":  "0011010",
		"ALU_SUB":  "0011011",
		"DONE":     "1",
	}

	assert.Equal(len(expected), tab.Len())
	for name, value := range expected {
		got, ok := tab.Lookup(name)
		assert.True(ok, name)
		assert.Equal(value, got, name)
	}

	var names []string
	for name := range tab.All() {
		names = append(names, name)
	}
	assert.True(slices.IsSorted(names))
	assert.Len(names, len(expected))
}

func TestBuilder_BadValue(t *testing.T) {
	assert := assert.New(t)

	src := "localparam MICRO_A = 4'q1, MICRO_B = 3, MICRO_C = 2'd1;\n" +
		"localparam MICRO_D = 2'd7;"

	tab, warnings, err := build(t, src)
	assert.NoError(err)

	assert.Equal(1, tab.Len())
	value, ok := tab.Lookup("C")
	assert.True(ok)
	assert.Equal(bits.String("01"), value)

	assert.Len(warnings, 3)

	var bad *ErrSymbolValue
	if assert.True(errors.As(warnings[0], &bad)) {
		assert.Equal("MICRO_A", bad.Name)
		assert.ErrorIs(bad, bits.ErrLiteralFormat("q"))
	}
	assert.Equal(1, warnings[0].LineNo)
	assert.Equal("s1c88.sv", warnings[0].Source)

	assert.ErrorIs(warnings[1], bits.ErrLiteralQuote)

	var overflow bits.ErrLiteralOverflow
	assert.True(errors.As(warnings[2], &overflow))
	assert.Equal(2, warnings[2].LineNo)
}

func TestBuilder_Redefined(t *testing.T) {
	assert := assert.New(t)

	tab, warnings, err := build(t, "localparam MICRO_A = 1'b0;\nlocalparam MICRO_A = 1'b1;")
	assert.NoError(err)

	value, _ := tab.Lookup("A")
	assert.Equal(bits.String("1"), value)

	assert.Len(warnings, 1)
	assert.ErrorIs(warnings[0], ErrSymbolRedefined("A"))
	assert.Equal(2, warnings[0].LineNo)
}

func TestBuilder_CommentInDeclaration(t *testing.T) {
	assert := assert.New(t)

	src := "localparam\n  MICRO_A = 1'b0, // first\n  MICRO_B = 1'b1;"
	tab, _, err := build(t, src)
	assert.Nil(tab)
	assert.ErrorIs(err, ErrDeclarationComment)

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.LineNo)
		assert.Equal("// first", syntax.Line)
	}

	// Comments in declarations that are not retained are ignored.
	src = "localparam STATE_A = 0, // first\n STATE_B = 1;\nlocalparam MICRO_X = 1'b1;"
	tab, _, err = build(t, src)
	assert.NoError(err)
	assert.Equal(1, tab.Len())
}

func TestBuilder_Unterminated(t *testing.T) {
	assert := assert.New(t)

	_, _, err := build(t, "localparam MICRO_A = 1'b0")
	assert.ErrorIs(err, ErrDeclarationUnterminated)

	_, _, err = build(t, "localparam MICRO_A = 1'b0\nlocalparam MICRO_B = 1'b1;")
	assert.ErrorIs(err, ErrDeclarationUnterminated)

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(1, syntax.LineNo)
	}

	// The missing ';' of a foreign declaration does not hide ours.
	tab, _, err := build(t, "localparam STATE_A = 0\nlocalparam MICRO_B = 1'b1;")
	assert.NoError(err)
	assert.Equal(1, tab.Len())
}

func TestBuilder_Syntax(t *testing.T) {
	assert := assert.New(t)

	_, _, err := build(t, "localparam MICRO_A 1'b0;")
	assert.ErrorIs(err, ErrDeclarationSyntax)

	_, _, err = build(t, "localparam MICRO_A = 1'b0, ;")
	assert.ErrorIs(err, ErrDeclarationSyntax)
}

func TestBuilder_Empty(t *testing.T) {
	assert := assert.New(t)

	tab, warnings, err := build(t, "// nothing here\n/* or here */\n")
	assert.NoError(err)
	assert.Empty(warnings)
	assert.Equal(0, tab.Len())
}

func TestBuilder_NoPrefix(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	tab, _, err := b.Parse(strings.NewReader("localparam A = 1'b1, B = 2'h3;"))
	assert.NoError(err)
	assert.Equal(2, tab.Len())

	value, ok := tab.Lookup("B")
	assert.True(ok)
	assert.Equal(bits.String("11"), value)
}
