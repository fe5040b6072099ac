package microcode

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
)

// EventKind is the kind of a microprogram source line.
type EventKind int

//go:generate go tool stringer -linecomment -type=EventKind
const (
	EVENT_INSTRUCTION = EventKind(0) // instruction
	EVENT_OPCODE      = EventKind(1) // opcode
	EVENT_DEFAULT     = EventKind(2) // default
)

const (
	DIRECTIVE_MARKER  = "#"
	DIRECTIVE_DEFAULT = "default"
	COMMENT_MARKER    = "//"
)

// Event is a single non-blank line of a microprogram source.
type Event struct {
	LineNo int       // Source line number.
	Line   string    // Line text, without comment.
	Kind   EventKind // Kind of the line.
	Opcode uint      // Raw opcode of an EVENT_OPCODE.
	Tokens []string  // Tokens of an EVENT_INSTRUCTION.
}

// ParseLine classifies a single source line. Blank and comment-only lines
// are not events.
func ParseLine(text string, lineno int) (ev Event, ok bool, err error) {
	line, _, _ := strings.Cut(text, COMMENT_MARKER)
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	ev = Event{LineNo: lineno, Line: line}
	ok = true

	directive, is_directive := strings.CutPrefix(line, DIRECTIVE_MARKER)
	if !is_directive {
		ev.Kind = EVENT_INSTRUCTION
		ev.Tokens = strings.Fields(line)
		return
	}

	directive = strings.TrimSpace(directive)
	if directive == DIRECTIVE_DEFAULT {
		ev.Kind = EVENT_DEFAULT
		return
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(directive, "0x"), "0X")
	opcode, perr := strconv.ParseUint(digits, 16, 32)
	if len(digits) == 0 || perr != nil {
		err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrDirectiveInvalid(directive)}
		return
	}

	ev.Kind = EVENT_OPCODE
	ev.Opcode = uint(opcode)

	return
}

// Events parses a microprogram source, yielding each event in source order.
// On error, the error is yielded and the sequence ends.
func Events(input io.Reader) iter.Seq2[Event, error] {
	return func(yield func(ev Event, err error) bool) {
		scanner := bufio.NewScanner(input)

		lineno := 0
		for scanner.Scan() {
			lineno += 1

			ev, ok, err := ParseLine(scanner.Text(), lineno)
			if err != nil {
				yield(ev, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(ev, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(Event{LineNo: lineno}, err)
		}
	}
}
