package internal

import (
	"iter"
)

// Concat joins multiple sequences into a single sequence.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Spans yields each adjacent pair of a sorted boundary list as a half-open
// [start, end) span.
func Spans(bounds []int) iter.Seq2[int, int] {
	return func(yield func(start, end int) bool) {
		for n := 1; n < len(bounds); n++ {
			if !yield(bounds[n-1], bounds[n]) {
				return
			}
		}
	}
}
