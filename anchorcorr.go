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

import "errors"
import "fmt"

/* -------------------------------------------------------------------------- */

// Expression values of a single transcript, one value per sample.
// Samples are matched to the methylation matrix by name, not by
// position.
type ExprVector struct {
  Samples []string
  Values  []float64
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewExprVector(samples []string, values []float64) ExprVector {
  if len(samples) != len(values) {
    panic("NewExprVector(): invalid parameters")
  }
  return ExprVector{samples, values}
}

/* -------------------------------------------------------------------------- */

// Correlation of a single methylation site with the expression of the
// anchor transcript. Distance is signed relative to the direction of
// transcription.
type SiteCor struct {
  Pos      int
  Distance int
  N        int
  R        float64
  P        float64
  Q        float64
}

// Correlation results for all methylation sites in the window of one
// anchor, ordered by genomic position.
type AnchorCors struct {
  Anchor Anchor
  Method CorMethod
  Adjust string
  Sites  []SiteCor
}

func (cors AnchorCors) Length() int {
  return len(cors.Sites)
}

/* -------------------------------------------------------------------------- */

// Correlate the methylation level of all sites in the window of the
// given anchor with the expression of the anchor transcript. Samples
// are matched by name and restricted to those present in both the
// matrix and the expression vector. If fewer than three samples are
// shared, the computation fails with ErrInsufficientSamples. If the
// window contains no methylation sites, or the anchor is located on a
// sequence absent from the matrix, the computation fails with
// ErrNoSitesInWindow. Both conditions are expected to occur for
// individual anchors and do not invalidate other anchors.
func ComputeAnchorCors(meth MethMatrix, expr ExprVector, anchor Anchor, method CorMethod, adjust string) (AnchorCors, error) {
  result := AnchorCors{Anchor: anchor, Method: method, Adjust: adjust}

  exprIdx := make(map[string]int)
  for i, name := range expr.Samples {
    exprIdx[name] = i
  }
  // columns of the matrix and positions in the expression vector that
  // refer to shared samples
  methIdx := []int{}
  valsIdx := []int{}
  for j, name := range meth.SampleNames() {
    if i, ok := exprIdx[name]; ok {
      methIdx = append(methIdx, j)
      valsIdx = append(valsIdx, i)
    }
  }
  if len(methIdx) < 3 {
    return result, fmt.Errorf("anchor `%s': %w: %d shared sample(s)",
      anchor.Name, ErrInsufficientSamples, len(methIdx))
  }
  span := anchor.Span()
  slice, err := meth.Slice(anchor.Seqname, span.From, span.To)
  if err != nil {
    if errors.Is(err, ErrInvalidSeqname) {
      return result, fmt.Errorf("anchor `%s': %w", anchor.Name, ErrNoSitesInWindow)
    }
    return result, err
  }
  if len(slice.Positions) == 0 {
    return result, fmt.Errorf("anchor `%s': %w", anchor.Name, ErrNoSitesInWindow)
  }
  // one table column per site, restricted to shared samples
  names   := make([]string,    len(slice.Positions))
  columns := make([][]float64, len(slice.Positions))
  for i := 0; i < len(slice.Positions); i++ {
    column := make([]float64, len(methIdx))
    for k := 0; k < len(methIdx); k++ {
      column[k] = slice.Values[i][methIdx[k]]
    }
    names  [i] = fmt.Sprintf("%s:%d", slice.Seqname, slice.Positions[i])
    columns[i] = column
  }
  values := make([]float64, len(valsIdx))
  for k := 0; k < len(valsIdx); k++ {
    values[k] = expr.Values[valsIdx[k]]
  }
  table1 := NewTable(names, columns)
  table2 := NewTable([]string{anchor.Name}, [][]float64{values})

  records, err := CorrelateTables(table1, table2, method, 0, adjust)
  if err != nil {
    return result, err
  }
  result.Sites = make([]SiteCor, len(records))
  for i := 0; i < len(records); i++ {
    result.Sites[i] = SiteCor{
      Pos     : slice.Positions[i],
      Distance: anchor.Distance(slice.Positions[i]),
      N       : records[i].N,
      R       : records[i].R,
      P       : records[i].P,
      Q       : records[i].Q }
  }
  return result, nil
}
