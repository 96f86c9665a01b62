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

//import   "fmt"
import   "math"
import   "testing"

/* -------------------------------------------------------------------------- */

func testSeries(scores []float64) ScoreSeries {
  anchor := NewAnchor("tr1", "chr1", 100, '+', 0, 1000)
  series := ScoreSeries{Anchor: anchor, Raw: scores}
  series.Positions = make([]int, len(scores))
  series.Distances = make([]int, len(scores))
  for i := 0; i < len(scores); i++ {
    series.Positions[i] = 100 + 10*i
    series.Distances[i] = 10*i
  }
  return series
}

/* -------------------------------------------------------------------------- */

func TestCallRegions1(t *testing.T) {

  series := testSeries([]float64{0.1, 3.5, 3.2, 2.9, 0.2, -0.1, -3.0, -2.8, -3.5, 0.0})
  params := RegionParams{
    PValue  : math.Pow(10, -2.3),
    Smooth  : false,
    MinSites: 3,
    MinGap  : 0 }

  regions, err := CallRegions(series, params)
  if err != nil {
    t.Error("TestCallRegions1 failed!")
  }
  if regions.Length() != 2 {
    t.Error("TestCallRegions1 failed!")
  }
  if regions[0].Direction != Positive {
    t.Error("TestCallRegions1 failed!")
  }
  if regions[0].Seqname != "chr1" || regions[0].From != 110 || regions[0].To != 131 {
    t.Error("TestCallRegions1 failed!")
  }
  if regions[0].NSites != 3 {
    t.Error("TestCallRegions1 failed!")
  }
  if regions[0].Distance != 30 {
    t.Error("TestCallRegions1 failed!")
  }
  if math.Abs(regions[0].MeanScore - 3.2) > 1e-8 {
    t.Error("TestCallRegions1 failed!")
  }
  if regions[1].Direction != Negative {
    t.Error("TestCallRegions1 failed!")
  }
  if regions[1].From != 160 || regions[1].To != 181 {
    t.Error("TestCallRegions1 failed!")
  }
  if regions[1].NSites != 3 {
    t.Error("TestCallRegions1 failed!")
  }
  // for negative regions the distance is the minimum over all member
  // sites
  if regions[1].Distance != 60 {
    t.Error("TestCallRegions1 failed!")
  }
  if math.Abs(regions[1].MeanScore + 3.1) > 1e-8 {
    t.Error("TestCallRegions1 failed!")
  }
}

func TestCallRegions2(t *testing.T) {

  // sites with a score exactly at the threshold are included
  score  := -math.Log10(0.005)
  params := RegionParams{
    PValue  : 0.005,
    Smooth  : false,
    MinSites: 3,
    MinGap  : 0 }

  regions, err := CallRegions(testSeries([]float64{score, score, score}), params)
  if err != nil {
    t.Error("TestCallRegions2 failed!")
  }
  if regions.Length() != 1 || regions[0].Direction != Positive || regions[0].NSites != 3 {
    t.Error("TestCallRegions2 failed!")
  }
  regions, err = CallRegions(testSeries([]float64{-score, -score, -score}), params)
  if err != nil {
    t.Error("TestCallRegions2 failed!")
  }
  if regions.Length() != 1 || regions[0].Direction != Negative || regions[0].NSites != 3 {
    t.Error("TestCallRegions2 failed!")
  }
}

func TestCallRegions3(t *testing.T) {

  anchor := NewAnchor("tr1", "chr1", 100, '+', 0, 1000)
  series := ScoreSeries{
    Anchor   : anchor,
    Positions: []int{100, 110, 150, 200, 210},
    Distances: []int{0, 10, 50, 100, 110},
    Raw      : []float64{3, 3, 0, 3, 3}}
  params := RegionParams{
    PValue  : 0.005,
    Smooth  : false,
    MinSites: 2,
    MinGap  : 100 }

  // the gap between [100, 111) and [200, 211) spans 89 positions
  regions, err := CallRegions(series, params)
  if err != nil {
    t.Error("TestCallRegions3 failed!")
  }
  if regions.Length() != 1 {
    t.Error("TestCallRegions3 failed!")
  }
  if regions[0].From != 100 || regions[0].To != 211 {
    t.Error("TestCallRegions3 failed!")
  }
  // the merged region covers the non-significant site at 150
  if regions[0].NSites != 5 {
    t.Error("TestCallRegions3 failed!")
  }
  params.MinGap = 89
  if regions, _ := CallRegions(series, params); regions.Length() != 1 {
    t.Error("TestCallRegions3 failed!")
  }
  params.MinGap = 88
  regions, err = CallRegions(series, params)
  if err != nil {
    t.Error("TestCallRegions3 failed!")
  }
  if regions.Length() != 2 {
    t.Error("TestCallRegions3 failed!")
  }
  if regions[0].NSites != 2 || regions[1].NSites != 2 {
    t.Error("TestCallRegions3 failed!")
  }
}

func TestCallRegions4(t *testing.T) {

  // merging is independent for the two directions, a region of the
  // opposite direction does not prevent a merge
  series := testSeries([]float64{3, -3, 3})
  params := RegionParams{
    PValue  : 0.005,
    Smooth  : false,
    MinSites: 1,
    MinGap  : 20 }

  regions, err := CallRegions(series, params)
  if err != nil {
    t.Error("TestCallRegions4 failed!")
  }
  if regions.Length() != 2 {
    t.Error("TestCallRegions4 failed!")
  }
  if regions[0].Direction != Positive || regions[0].From != 100 || regions[0].To != 121 {
    t.Error("TestCallRegions4 failed!")
  }
  if regions[0].NSites != 3 {
    t.Error("TestCallRegions4 failed!")
  }
  if math.Abs(regions[0].MeanScore - 1.0) > 1e-8 {
    t.Error("TestCallRegions4 failed!")
  }
  if regions[1].Direction != Negative || regions[1].From != 110 || regions[1].To != 111 {
    t.Error("TestCallRegions4 failed!")
  }
  if regions[1].NSites != 1 {
    t.Error("TestCallRegions4 failed!")
  }
}

func TestCallRegions5(t *testing.T) {

  params := RegionParams{
    PValue  : 0.005,
    Smooth  : false,
    MinSites: 2,
    MinGap  : 0 }

  // single significant site, discarded by the MinSites filter
  regions, err := CallRegions(testSeries([]float64{3, 0, 0}), params)
  if err != nil {
    t.Error("TestCallRegions5 failed!")
  }
  if regions.Length() != 0 {
    t.Error("TestCallRegions5 failed!")
  }
  // no site breaches either threshold
  regions, err = CallRegions(testSeries([]float64{1, -1, 0.5}), params)
  if err != nil || regions.Length() != 0 {
    t.Error("TestCallRegions5 failed!")
  }
  // NaN scores are significant in neither direction
  regions, err = CallRegions(testSeries([]float64{math.NaN(), math.NaN()}), params)
  if err != nil || regions.Length() != 0 {
    t.Error("TestCallRegions5 failed!")
  }
}

func TestCallRegions6(t *testing.T) {

  // a NaN score breaks a run of significant sites
  series := testSeries([]float64{3, 3, math.NaN(), 3, 3})
  params := RegionParams{
    PValue  : 0.005,
    Smooth  : false,
    MinSites: 2,
    MinGap  : 5 }

  regions, err := CallRegions(series, params)
  if err != nil {
    t.Error("TestCallRegions6 failed!")
  }
  if regions.Length() != 2 {
    t.Error("TestCallRegions6 failed!")
  }
  // with a sufficiently large gap width both runs are merged and the
  // region covers the NaN site
  params.MinGap = 19
  regions, err = CallRegions(series, params)
  if err != nil {
    t.Error("TestCallRegions6 failed!")
  }
  if regions.Length() != 1 || regions[0].NSites != 5 {
    t.Error("TestCallRegions6 failed!")
  }
}

func TestCallRegions7(t *testing.T) {

  // lowering the p-value threshold never adds called sites
  series := testSeries([]float64{1.5, 3, 1.5})
  params := RegionParams{
    PValue  : 0.05,
    Smooth  : false,
    MinSites: 1,
    MinGap  : 0 }

  regions, err := CallRegions(series, params)
  if err != nil {
    t.Error("TestCallRegions7 failed!")
  }
  if regions.Length() != 1 || regions[0].NSites != 3 {
    t.Error("TestCallRegions7 failed!")
  }
  params.PValue = 0.005
  regions, err = CallRegions(series, params)
  if err != nil {
    t.Error("TestCallRegions7 failed!")
  }
  if regions.Length() != 1 || regions[0].NSites != 1 {
    t.Error("TestCallRegions7 failed!")
  }
}

func TestCallRegions8(t *testing.T) {

  // calling regions on pre-smoothed scores is equivalent to smoothing
  // within CallRegions
  series := testSeries([]float64{0.5, 2.0, 3.5, 2.8, 0.3, -1.0, -3.2, -2.5, -0.2, 1.1})
  params := RegionParams{
    PValue  : 0.01,
    Smooth  : true,
    Offset  : 2,
    Factor  : 0.5,
    MinSites: 1,
    MinGap  : 0 }

  regions1, err := CallRegions(series, params)
  if err != nil {
    t.Error("TestCallRegions8 failed!")
  }
  if regions1.Length() != 1 {
    t.Error("TestCallRegions8 failed!")
  }
  smoothed, err := SmoothScores(series.Raw, params.Offset, params.Factor)
  if err != nil {
    t.Error("TestCallRegions8 failed!")
  }
  series2 := series
  series2.Raw = smoothed
  params2 := params
  params2.Smooth = false

  regions2, err := CallRegions(series2, params2)
  if err != nil {
    t.Error("TestCallRegions8 failed!")
  }
  if regions1.Length() != regions2.Length() {
    t.Error("TestCallRegions8 failed!")
  }
  for i := 0; i < regions1.Length(); i++ {
    if regions1[i].From != regions2[i].From || regions1[i].To != regions2[i].To {
      t.Error("TestCallRegions8 failed!")
    }
    if regions1[i].Direction != regions2[i].Direction {
      t.Error("TestCallRegions8 failed!")
    }
    if regions1[i].NSites != regions2[i].NSites {
      t.Error("TestCallRegions8 failed!")
    }
    if math.Abs(regions1[i].MeanScore - regions2[i].MeanScore) > 1e-8 {
      t.Error("TestCallRegions8 failed!")
    }
  }
  // results are deterministic
  regions3, err := CallRegions(series, params)
  if err != nil || regions3.Length() != regions1.Length() {
    t.Error("TestCallRegions8 failed!")
  }
}

func TestCallRegions9(t *testing.T) {

  series := testSeries([]float64{3, 3, 3})

  params := RegionParams{PValue: 0.0, Smooth: false, MinSites: 1, MinGap: 0}
  if _, err := CallRegions(series, params); err == nil {
    t.Error("TestCallRegions9 failed!")
  }
  params = RegionParams{PValue: 1.5, Smooth: false, MinSites: 1, MinGap: 0}
  if _, err := CallRegions(series, params); err == nil {
    t.Error("TestCallRegions9 failed!")
  }
  params = RegionParams{PValue: 0.005, Smooth: false, MinSites: -1, MinGap: 0}
  if _, err := CallRegions(series, params); err == nil {
    t.Error("TestCallRegions9 failed!")
  }
  params = RegionParams{PValue: 0.005, Smooth: false, MinSites: 1, MinGap: -1}
  if _, err := CallRegions(series, params); err == nil {
    t.Error("TestCallRegions9 failed!")
  }
  params = RegionParams{PValue: 0.005, Smooth: true, Offset: 1, Factor: 0.0, MinSites: 1, MinGap: 0}
  if _, err := CallRegions(series, params); err == nil {
    t.Error("TestCallRegions9 failed!")
  }
  // smoothing parameters are ignored if smoothing is disabled
  params = RegionParams{PValue: 0.005, Smooth: false, Offset: 1, Factor: 0.0, MinSites: 1, MinGap: 0}
  if _, err := CallRegions(series, params); err != nil {
    t.Error("TestCallRegions9 failed!")
  }
}
