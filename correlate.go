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

import "gonum.org/v1/gonum/stat"
import "gonum.org/v1/gonum/stat/distuv"

/* -------------------------------------------------------------------------- */

type CorMethod int

const (
  Pearson  CorMethod = iota
  Spearman
)

func ParseCorMethod(str string) (CorMethod, error) {
  switch strings.ToLower(str) {
  case "pearson" : return Pearson , nil
  case "spearman": return Spearman, nil
  }
  return Pearson, fmt.Errorf("%w: `%s'", ErrInvalidMethod, str)
}

func (method CorMethod) String() string {
  switch method {
  case Pearson : return "pearson"
  case Spearman: return "spearman"
  }
  return "unknown"
}

/* -------------------------------------------------------------------------- */

// A table of named numeric columns sharing a common row dimension.
// Rows correspond to samples, missing observations are NaN.
type Table struct {
  Names   []string
  Columns [][]float64
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewTable(names []string, columns [][]float64) Table {
  if len(names) != len(columns) {
    panic("NewTable(): invalid parameters")
  }
  for i := 1; i < len(columns); i++ {
    if len(columns[i]) != len(columns[0]) {
      panic("NewTable(): columns have varying lengths")
    }
  }
  return Table{names, columns}
}

/* -------------------------------------------------------------------------- */

func (table Table) Rows() int {
  if len(table.Columns) == 0 {
    return 0
  }
  return len(table.Columns[0])
}

func (table Table) Cols() int {
  return len(table.Columns)
}

/* -------------------------------------------------------------------------- */

// Correlation between two named columns. N is the number of complete
// observation pairs the statistics are computed from. Undefined
// statistics are represented as NaN: R is NaN if fewer than two
// complete pairs exist or one of the columns has zero variance, P is
// NaN if fewer than three complete pairs exist, no degrees of freedom
// are left, or the correlation is ±1. Q is NaN unless an adjustment
// method was applied.
type PairCor struct {
  Name1 string
  Name2 string
  N     int
  R     float64
  P     float64
  Q     float64
}

type PairCorList []PairCor

func (records PairCorList) Length() int {
  return len(records)
}

// Compute correlation coefficients and significance values between all
// pairs of columns from two tables, where the first column of a pair
// is taken from table1 and the second from table2. Both tables must
// have the same number of rows. Observation pairs with missing values
// are dropped for the respective pair of columns. The degrees of
// freedom of the significance test are reduced by the given number of
// covariates. If adjust names a p-value adjustment method other than
// `none', q-values are computed over all pairs (see AdjustPValues).
// Records are ordered by column of table1 first and column of table2
// second.
func CorrelateTables(table1, table2 Table, method CorMethod, covariates int, adjust string) (PairCorList, error) {
  if table1.Rows() != table2.Rows() {
    return nil, fmt.Errorf("%w: tables have %d and %d rows",
      ErrDimensionMismatch, table1.Rows(), table2.Rows())
  }
  if covariates < 0 {
    return nil, fmt.Errorf("number of covariates must be non-negative")
  }
  switch method {
  case Pearson, Spearman:
  default:
    return nil, fmt.Errorf("%w: `%d'", ErrInvalidMethod, int(method))
  }
  records := make(PairCorList, 0, table1.Cols()*table2.Cols())
  for i := 0; i < table1.Cols(); i++ {
    for j := 0; j < table2.Cols(); j++ {
      x, y := completePairs(table1.Columns[i], table2.Columns[j])
      r := corCoefficient(x, y, method)
      p := corPValue(r, len(x), covariates)
      records = append(records, PairCor{
        Name1: table1.Names[i],
        Name2: table2.Names[j],
        N    : len(x),
        R    : r,
        P    : p,
        Q    : math.NaN() })
    }
  }
  if adjust != "" && adjust != "none" {
    pvalues := make([]float64, len(records))
    for i := 0; i < len(records); i++ {
      pvalues[i] = records[i].P
    }
    qvalues, err := AdjustPValues(pvalues, adjust)
    if err != nil {
      return nil, err
    }
    for i := 0; i < len(records); i++ {
      records[i].Q = qvalues[i]
    }
  }
  return records, nil
}

/* -------------------------------------------------------------------------- */

// Drop all observation pairs where at least one value is missing.
func completePairs(x, y []float64) ([]float64, []float64) {
  xc := []float64{}
  yc := []float64{}
  for i := 0; i < len(x); i++ {
    if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
      continue
    }
    xc = append(xc, x[i])
    yc = append(yc, y[i])
  }
  return xc, yc
}

func corCoefficient(x, y []float64, method CorMethod) float64 {
  if len(x) < 2 {
    return math.NaN()
  }
  if method == Spearman {
    x = rankTransform(x)
    y = rankTransform(y)
  }
  if stat.Variance(x, nil) == 0.0 || stat.Variance(y, nil) == 0.0 {
    return math.NaN()
  }
  return stat.Correlation(x, y, nil)
}

// Two-sided p-value of a correlation coefficient under the null
// hypothesis of no association. The statistic
// t = r sqrt(df)/sqrt(1-r^2) follows a Student-t distribution with
// df = n-2-covariates degrees of freedom.
func corPValue(r float64, n, covariates int) float64 {
  df := n - 2 - covariates
  if n < 3 || df < 1 || math.IsNaN(r) {
    return math.NaN()
  }
  if r*r >= 1.0 {
    return math.NaN()
  }
  t := r*math.Sqrt(float64(df))/math.Sqrt(1.0 - r*r)
  studentsT := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
  return 2.0*studentsT.CDF(-math.Abs(t))
}

/* -------------------------------------------------------------------------- */

// Sorts an index slice by the values it refers to.
type sortIndex struct {
  values []float64
  index  []int
}

func (obj sortIndex) Len() int {
  return len(obj.index)
}

func (obj sortIndex) Less(i, j int) bool {
  return obj.values[obj.index[i]] < obj.values[obj.index[j]]
}

func (obj sortIndex) Swap(i, j int) {
  obj.index[i], obj.index[j] = obj.index[j], obj.index[i]
}

// Transform values to ranks, where ties are assigned the average of
// the ranks they occupy. Values must not contain NaN.
func rankTransform(x []float64) []float64 {
  n     := len(x)
  index := make([]int, n)
  for i := 0; i < n; i++ {
    index[i] = i
  }
  sort.Sort(sortIndex{x, index})
  ranks := make([]float64, n)
  for i := 0; i < n; {
    j := i
    for j+1 < n && x[index[j+1]] == x[index[i]] {
      j++
    }
    rank := float64(i+j)/2.0 + 1.0
    for k := i; k <= j; k++ {
      ranks[index[k]] = rank
    }
    i = j+1
  }
  return ranks
}
