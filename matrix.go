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
import "math"
import "sort"

/* -------------------------------------------------------------------------- */

// A contiguous slice of a methylation matrix. Values is site-major,
// i.e. Values[i][j] is the methylation level of site Positions[i] in
// sample j. Missing observations are NaN. Slices returned by a
// MethMatrix may share memory with the matrix and must not be
// modified.
type SiteSlice struct {
  Seqname   string
  Positions []int
  Values    [][]float64
}

// Interface for accessing a methylation matrix. How the matrix is
// stored is left to the implementation, which may keep it on disk or
// in compressed form. Implementations must support concurrent calls
// to all three methods.
type MethMatrix interface {
  SampleNames() []string
  Sites      (seqname string) ([]int, error)
  Slice      (seqname string, from, to int) (SiteSlice, error)
}

/* simple in-memory matrix
 * -------------------------------------------------------------------------- */

type MethSequence struct {
  Positions []int
  Values    [][]float64
}

// Reference implementation of a methylation matrix that keeps all
// values in memory, organized by sequence name.
type SimpleMethMatrix struct {
  Samples []string
  Data    map[string]MethSequence
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewSimpleMethMatrix(samples []string) SimpleMethMatrix {
  data := make(map[string]MethSequence)
  return SimpleMethMatrix{samples, data}
}

/* -------------------------------------------------------------------------- */

// Append methylation sites to the given sequence. Positions must be
// sorted, free of duplicates, and located after all sites previously
// added to the sequence. Each row of values holds one observation per
// sample, missing observations are NaN.
func (matrix SimpleMethMatrix) AddSites(seqname string, positions []int, values [][]float64) error {
  if len(positions) != len(values) {
    return fmt.Errorf("%w: positions and values have different lengths", ErrDimensionMismatch)
  }
  for i := 0; i < len(values); i++ {
    if len(values[i]) != len(matrix.Samples) {
      return fmt.Errorf("%w: site `%d' has %d values but matrix has %d samples",
        ErrDimensionMismatch, positions[i], len(values[i]), len(matrix.Samples))
    }
  }
  for i := 1; i < len(positions); i++ {
    if positions[i-1] >= positions[i] {
      return fmt.Errorf("positions must be sorted and free of duplicates")
    }
  }
  sequence := matrix.Data[seqname]
  if n := len(sequence.Positions); n > 0 && len(positions) > 0 {
    if sequence.Positions[n-1] >= positions[0] {
      return fmt.Errorf("positions must be added in ascending order")
    }
  }
  sequence.Positions = append(sequence.Positions, positions...)
  sequence.Values    = append(sequence.Values,    values   ...)
  matrix.Data[seqname] = sequence
  return nil
}

// Record a single missing observation, i.e. set the value of the given
// site and sample to NaN.
func (matrix SimpleMethMatrix) SetMissing(seqname string, position, sample int) error {
  sequence, ok := matrix.Data[seqname]
  if !ok {
    return fmt.Errorf("%w: `%s'", ErrInvalidSeqname, seqname)
  }
  i := sort.SearchInts(sequence.Positions, position)
  if i == len(sequence.Positions) || sequence.Positions[i] != position {
    return fmt.Errorf("no site at position `%d'", position)
  }
  sequence.Values[i][sample] = math.NaN()
  return nil
}

/* -------------------------------------------------------------------------- */

func (matrix SimpleMethMatrix) SampleNames() []string {
  return matrix.Samples
}

func (matrix SimpleMethMatrix) Sites(seqname string) ([]int, error) {
  sequence, ok := matrix.Data[seqname]
  if !ok {
    return nil, fmt.Errorf("%w: `%s'", ErrInvalidSeqname, seqname)
  }
  return sequence.Positions, nil
}

func (matrix SimpleMethMatrix) Slice(seqname string, from, to int) (SiteSlice, error) {
  result := SiteSlice{Seqname: seqname}
  sequence, ok := matrix.Data[seqname]
  if !ok {
    return result, fmt.Errorf("%w: `%s'", ErrInvalidSeqname, seqname)
  }
  if from > to {
    return result, fmt.Errorf("invalid range [%d, %d)", from, to)
  }
  i := sort.SearchInts(sequence.Positions, from)
  j := sort.SearchInts(sequence.Positions, to)
  result.Positions = sequence.Positions[i:j]
  result.Values    = sequence.Values   [i:j]
  return result, nil
}

/* -------------------------------------------------------------------------- */

func (matrix SimpleMethMatrix) Seqnames() []string {
  seqnames := []string{}
  for seqname, _ := range matrix.Data {
    seqnames = append(seqnames, seqname)
  }
  sort.Strings(seqnames)
  return seqnames
}
