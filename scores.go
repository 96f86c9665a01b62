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

/* -------------------------------------------------------------------------- */

// Signed significance scores of all methylation sites in the window of
// one anchor, ordered by genomic position. Smoothed is nil until
// Smooth() is called.
type ScoreSeries struct {
  Anchor    Anchor
  Positions []int
  Distances []int
  Raw       []float64
  Smoothed  []float64
}

/* -------------------------------------------------------------------------- */

// Transform correlation results into signed significance scores
// -sign(r) log10(p). Sites with an undefined correlation coefficient
// or p-value receive a NaN score.
func MethScores(cors AnchorCors) ScoreSeries {
  series := ScoreSeries{Anchor: cors.Anchor}
  series.Positions = make([]int,     len(cors.Sites))
  series.Distances = make([]int,     len(cors.Sites))
  series.Raw       = make([]float64, len(cors.Sites))
  for i, site := range cors.Sites {
    series.Positions[i] = site.Pos
    series.Distances[i] = site.Distance
    series.Raw      [i] = methScore(site.R, site.P)
  }
  return series
}

func methScore(r, p float64) float64 {
  if math.IsNaN(r) || math.IsNaN(p) {
    return math.NaN()
  }
  switch {
  case r > 0.0: return -math.Log10(p)
  case r < 0.0: return  math.Log10(p)
  }
  return 0.0
}

/* -------------------------------------------------------------------------- */

// Smooth scores with an exponential moving average. The smoothed score
// at position i is the weighted mean of the scores at positions
// [i-offset, i+offset], clipped at the boundaries, where the score at
// distance d receives weight factor^|d|. NaN scores are excluded from
// both the numerator and the denominator, a window containing only NaN
// scores yields NaN. The factor must be in (0,1], a factor of 1 yields
// a plain moving average.
func SmoothScores(scores []float64, offset int, factor float64) ([]float64, error) {
  if offset < 0 {
    return nil, fmt.Errorf("smoothing offset must be non-negative")
  }
  if factor <= 0.0 || factor > 1.0 {
    return nil, fmt.Errorf("smoothing factor `%f' is not in (0,1]", factor)
  }
  result := make([]float64, len(scores))
  for i := 0; i < len(scores); i++ {
    num  := 0.0
    den  := 0.0
    from := iMax(0, i-offset)
    to   := iMin(len(scores)-1, i+offset)
    for j := from; j <= to; j++ {
      if math.IsNaN(scores[j]) {
        continue
      }
      w := math.Pow(factor, math.Abs(float64(j-i)))
      num += w*scores[j]
      den += w
    }
    if den == 0.0 {
      result[i] = math.NaN()
    } else {
      result[i] = num/den
    }
  }
  return result, nil
}

/* -------------------------------------------------------------------------- */

func (series *ScoreSeries) Smooth(offset int, factor float64) error {
  smoothed, err := SmoothScores(series.Raw, offset, factor)
  if err != nil {
    return err
  }
  series.Smoothed = smoothed
  return nil
}

func (series ScoreSeries) Length() int {
  return len(series.Positions)
}
