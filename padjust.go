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
import "strings"

/* -------------------------------------------------------------------------- */

// Adjust p-values for multiple testing. Supported methods are `none',
// `bonferroni', `holm', `BH' (alias `fdr'), and `BY'. NaN entries mark
// tests with undefined p-values, they remain NaN and do not count
// towards the number of tests. The result preserves the order of the
// input.
func AdjustPValues(pvalues []float64, method string) ([]float64, error) {
  switch strings.ToLower(method) {
  case "none":
    result := make([]float64, len(pvalues))
    copy(result, pvalues)
    return result, nil
  case "bonferroni":
    return adjustBonferroni(pvalues), nil
  case "holm":
    return adjustHolm(pvalues), nil
  case "bh", "fdr":
    return adjustBH(pvalues, 1.0), nil
  case "by":
    return adjustBH(pvalues, byFactor(pvalues)), nil
  }
  return nil, fmt.Errorf("%w: `%s'", ErrInvalidMethod, method)
}

/* -------------------------------------------------------------------------- */

// Indices of all defined p-values, sorted in ascending order of the
// values they refer to.
func sortedPValues(pvalues []float64) []int {
  index := []int{}
  for i := 0; i < len(pvalues); i++ {
    if !math.IsNaN(pvalues[i]) {
      index = append(index, i)
    }
  }
  sort.Sort(sortIndex{pvalues, index})
  return index
}

func naSlice(n int) []float64 {
  result := make([]float64, n)
  for i := 0; i < n; i++ {
    result[i] = math.NaN()
  }
  return result
}

/* -------------------------------------------------------------------------- */

func adjustBonferroni(pvalues []float64) []float64 {
  result := naSlice(len(pvalues))
  index  := sortedPValues(pvalues)
  m      := float64(len(index))
  for _, i := range index {
    q := m*pvalues[i]
    if q > 1.0 {
      q = 1.0
    }
    result[i] = q
  }
  return result
}

// Step-down method due to Holm: p-values are visited in ascending
// order and multiplied by the number of remaining tests, a running
// maximum enforces monotonicity.
func adjustHolm(pvalues []float64) []float64 {
  result  := naSlice(len(pvalues))
  index   := sortedPValues(pvalues)
  m       := len(index)
  running := 0.0
  for k := 0; k < m; k++ {
    q := float64(m-k)*pvalues[index[k]]
    if q > running {
      running = q
    }
    if running > 1.0 {
      result[index[k]] = 1.0
    } else {
      result[index[k]] = running
    }
  }
  return result
}

// Step-up method due to Benjamini-Hochberg: p-values are visited in
// descending order and scaled by m/rank, a running minimum enforces
// monotonicity. The additional factor cm is 1 for BH and the m-th
// harmonic number for BY.
func adjustBH(pvalues []float64, cm float64) []float64 {
  result  := naSlice(len(pvalues))
  index   := sortedPValues(pvalues)
  m       := len(index)
  running := math.Inf(1)
  for k := m-1; k >= 0; k-- {
    q := cm*float64(m)/float64(k+1)*pvalues[index[k]]
    if q < running {
      running = q
    }
    if running > 1.0 {
      result[index[k]] = 1.0
    } else {
      result[index[k]] = running
    }
  }
  return result
}

func byFactor(pvalues []float64) float64 {
  m := 0
  for i := 0; i < len(pvalues); i++ {
    if !math.IsNaN(pvalues[i]) {
      m++
    }
  }
  cm := 0.0
  for k := 1; k <= m; k++ {
    cm += 1.0/float64(k)
  }
  return cm
}
