/* Copyright (C) 2025 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package methodical

/* -------------------------------------------------------------------------- */

import "fmt"

/* -------------------------------------------------------------------------- */

// An anchor is a single genomic position, typically the transcription
// start site (TSS) of a transcript, around which methylation sites are
// correlated with expression. The window spans [upstream] positions in
// 5' direction and [downstream] positions in 3' direction, where the
// direction is determined by the strand.
type Anchor struct {
  Name       string
  Seqname    string
  Pos        int
  Strand     byte
  Upstream   int
  Downstream int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewAnchor(name, seqname string, pos int, strand byte, upstream, downstream int) Anchor {
  if strand != '+' && strand != '-' {
    panic("NewAnchor(): invalid strand")
  }
  if upstream < 0 || downstream < 0 {
    panic("NewAnchor(): window extents must be non-negative")
  }
  return Anchor{name, seqname, pos, strand, upstream, downstream}
}

// Construct an anchor at the transcription start site of a transcript
// with the given extent [txFrom, txTo). For transcripts on the plus
// strand the TSS is located at txFrom, for transcripts on the minus
// strand at txTo-1.
func TSSAnchor(name, seqname string, txFrom, txTo int, strand byte, upstream, downstream int) Anchor {
  pos := 0
  switch strand {
  case '+': pos = txFrom
  case '-': pos = txTo-1
  default:
    panic("TSSAnchor(): invalid strand")
  }
  return NewAnchor(name, seqname, pos, strand, upstream, downstream)
}

/* -------------------------------------------------------------------------- */

// Genomic window around the anchor position as interval [from, to).
// Genomic bounds are not checked, i.e. the window may extend beyond
// the ends of the sequence.
func (anchor Anchor) Span() Range {
  from, to := 0, 0
  if anchor.Strand == '+' {
    from = anchor.Pos - anchor.Upstream
    to   = anchor.Pos + anchor.Downstream + 1
  } else {
    from = anchor.Pos - anchor.Downstream
    to   = anchor.Pos + anchor.Upstream   + 1
  }
  return NewRange(from, to)
}

// Distance of a genomic position to the anchor, signed relative to the
// direction of transcription. Positions upstream of the anchor have
// negative distances, positions downstream positive distances.
func (anchor Anchor) Distance(position int) int {
  if anchor.Strand == '+' {
    return position - anchor.Pos
  } else {
    return anchor.Pos - position
  }
}

/* -------------------------------------------------------------------------- */

func (anchor Anchor) String() string {
  return fmt.Sprintf("%s(%s:%d%c)", anchor.Name, anchor.Seqname, anchor.Pos, anchor.Strand)
}
