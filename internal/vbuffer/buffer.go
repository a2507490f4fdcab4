// Package vbuffer implements the bounded typing buffer (spec §3/§4.2, C2):
// an ordered, append-mostly sequence of per-character records tracking the
// in-progress syllable so tone and mark placement can be recomputed as later
// keystrokes change the nucleus.
package vbuffer

import "gonhanh/internal/tables"

// Capacity is the buffer's bound. The reference implementation uses 256;
// spec §3 requires only that it be at least 64.
const Capacity = 256

// CharRecord is one buffer slot (spec §3).
type CharRecord struct {
	Base      rune        // unmarked ASCII letter, or any other scalar that falls through
	VowelMark tables.Mark // MarkNone unless this slot is a marked vowel
	Tone      tables.Tone // ToneNone unless this slot carries the syllable's tone
	Stroke    bool        // true on a 'd' slot that has been struck through to đ
	CaseUpper bool
	LastKey   tables.Code // most recent key that touched this slot, for revert
	IsBreak   bool        // true if this slot is a break scalar (space, punctuation, ...)
}

// Scalar is the composed Unicode codepoint this record renders as.
func (r CharRecord) Scalar() rune {
	if r.Base == 'd' || r.Base == 'D' {
		if r.Stroke {
			return tables.DStroke(r.CaseUpper)
		}
		if r.CaseUpper {
			return 'D'
		}
		return 'd'
	}
	if !tables.IsVowelChar(r.Base) {
		if r.CaseUpper {
			return upperASCII(r.Base)
		}
		return r.Base
	}
	return tables.Compose(r.Base, r.VowelMark, r.Tone, r.CaseUpper)
}

func upperASCII(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - ('a' - 'A')
	}
	return ch
}

// Buffer is the bounded ring of CharRecord described in spec §3/§4.2.
type Buffer struct {
	recs []CharRecord
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{recs: make([]CharRecord, 0, Capacity)}
}

// Len returns the number of buffered records.
func (b *Buffer) Len() int { return len(b.recs) }

// Append pushes rec at the tail. On overflow, the buffer truncates to the
// most recent break point (spec §4.2: "eviction must not split a Vietnamese
// syllable").
func (b *Buffer) Append(rec CharRecord) {
	if len(b.recs) >= Capacity {
		b.truncateToLastBreak()
	}
	b.recs = append(b.recs, rec)
}

// truncateToLastBreak drops everything up to and including the most recent
// break record, or clears entirely if none exists.
func (b *Buffer) truncateToLastBreak() {
	for i := len(b.recs) - 1; i >= 0; i-- {
		if b.recs[i].IsBreak {
			b.recs = append([]CharRecord{}, b.recs[i+1:]...)
			return
		}
	}
	b.recs = b.recs[:0]
}

// PopLast removes one logical character from the tail. A no-op on an empty
// buffer (spec §4.2 failure mode).
func (b *Buffer) PopLast() {
	if len(b.recs) == 0 {
		return
	}
	b.recs = b.recs[:len(b.recs)-1]
}

// Clear drops all entries (host calls this on focus change / click).
func (b *Buffer) Clear() {
	b.recs = b.recs[:0]
}

// TailSinceBreak returns up to k records since the most recent break
// scalar, oldest first. k <= 0 means unbounded.
func (b *Buffer) TailSinceBreak(k int) []CharRecord {
	start := 0
	for i := len(b.recs) - 1; i >= 0; i-- {
		if b.recs[i].IsBreak {
			start = i + 1
			break
		}
	}
	tail := b.recs[start:]
	if k > 0 && len(tail) > k {
		tail = tail[len(tail)-k:]
	}
	out := make([]CharRecord, len(tail))
	copy(out, tail)
	return out
}

// ReplaceTail atomically pops n records and pushes recs in their place.
func (b *Buffer) ReplaceTail(n int, recs []CharRecord) {
	if n > len(b.recs) {
		n = len(b.recs)
	}
	b.recs = b.recs[:len(b.recs)-n]
	b.recs = append(b.recs, recs...)
}

// All returns a copy of every buffered record, oldest first.
func (b *Buffer) All() []CharRecord {
	out := make([]CharRecord, len(b.recs))
	copy(out, b.recs)
	return out
}

// Text renders the full buffer as composed Unicode text.
func (b *Buffer) Text() string {
	runes := make([]rune, len(b.recs))
	for i, r := range b.recs {
		runes[i] = r.Scalar()
	}
	return string(runes)
}
