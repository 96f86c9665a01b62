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

import "github.com/montanaflynn/stats"

/* -------------------------------------------------------------------------- */

type Direction int

const (
  Positive Direction = iota
  Negative
)

func (direction Direction) String() string {
  if direction == Negative {
    return "negative"
  }
  return "positive"
}

/* -------------------------------------------------------------------------- */

// A transcription-methylation region (TMR): a run of methylation sites
// whose methylation levels are consistently correlated (positive
// direction) or anti-correlated (negative direction) with the
// expression of the anchor transcript. The range covers the outermost
// member sites as interval [from, to). NSites is the number of member
// sites, Distance the maximum member distance to the anchor for
// positive regions and the minimum for negative regions. MeanScore is
// the mean score of all member sites.
type Region struct {
  Seqname   string
  Range
  Direction Direction
  NSites    int
  Distance  int
  MeanScore float64
  Anchor    Anchor
}

func (region Region) String() string {
  return fmt.Sprintf("%s:[%d %d) %s sites=%d anchor=%s",
    region.Seqname, region.From, region.To, region.Direction, region.NSites, region.Anchor.Name)
}

/* -------------------------------------------------------------------------- */

type RegionList []Region

func (regions RegionList) Length() int {
  return len(regions)
}

/* -------------------------------------------------------------------------- */

// Parameters of the region caller. PValue is converted into the score
// threshold T = -log10(PValue). If Smooth is set, scores are smoothed
// with the given Offset and Factor before thresholding (see
// SmoothScores). Regions of the same direction separated by a genomic
// gap of at most MinGap positions are merged, regions with fewer than
// MinSites member sites are discarded.
type RegionParams struct {
  PValue   float64
  Smooth   bool
  Offset   int
  Factor   float64
  MinSites int
  MinGap   int
}

func DefaultRegionParams() RegionParams {
  return RegionParams{
    PValue  : 0.005,
    Smooth  : true,
    Offset  : 10,
    Factor  : 0.75,
    MinSites: 5,
    MinGap  : 150 }
}

func (params RegionParams) check() error {
  if params.PValue <= 0.0 || params.PValue > 1.0 {
    return fmt.Errorf("p-value threshold `%f' is not in (0,1]", params.PValue)
  }
  if params.MinSites < 0 {
    return fmt.Errorf("minimum number of sites must be non-negative")
  }
  if params.MinGap < 0 {
    return fmt.Errorf("minimum gap width must be non-negative")
  }
  if params.Smooth {
    if params.Offset < 0 {
      return fmt.Errorf("smoothing offset must be non-negative")
    }
    if params.Factor <= 0.0 || params.Factor > 1.0 {
      return fmt.Errorf("smoothing factor `%f' is not in (0,1]", params.Factor)
    }
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Call regions from a score series. A site is significant in positive
// direction if its score is greater than or equal to +T, and in
// negative direction if its score is less than or equal to -T, where
// both comparisons include the boundary. A NaN score is significant in
// neither direction and breaks a run. Merging is transitive and
// independent for the two directions, i.e. an intervening region of
// the opposite direction does not prevent a merge. Results are ordered
// by position. If no site breaches either threshold the result is
// empty, not an error.
func CallRegions(series ScoreSeries, params RegionParams) (RegionList, error) {
  if err := params.check(); err != nil {
    return nil, err
  }
  scores := series.Raw
  if params.Smooth {
    smoothed, err := SmoothScores(series.Raw, params.Offset, params.Factor)
    if err != nil {
      return nil, err
    }
    scores = smoothed
  }
  threshold := -math.Log10(params.PValue)

  regions := RegionList{}
  regions = append(regions, callDirection(series, scores, threshold, Positive, params)...)
  regions = append(regions, callDirection(series, scores, threshold, Negative, params)...)
  sort.Sort(sortRegions(regions))

  return regions, nil
}

// Call transcription-methylation regions for a single anchor. This is
// the composition of MethScores and CallRegions.
func FindTMRs(cors AnchorCors, params RegionParams) (RegionList, error) {
  return CallRegions(MethScores(cors), params)
}

/* -------------------------------------------------------------------------- */

type siteRun struct {
  first, last int
}

func callDirection(series ScoreSeries, scores []float64, threshold float64, direction Direction, params RegionParams) []Region {
  significant := func(score float64) bool {
    if direction == Positive {
      return score >=  threshold
    } else {
      return score <= -threshold
    }
  }
  // maximal runs of consecutive significant sites
  runs := []siteRun{}
  for i := 0; i < len(scores); i++ {
    if !significant(scores[i]) {
      continue
    }
    j := i
    for j+1 < len(scores) && significant(scores[j+1]) {
      j++
    }
    runs = append(runs, siteRun{i, j})
    i = j
  }
  // merge runs whose genomic gap is at most MinGap, where the gap is
  // measured between the region boundaries [from, to)
  merged := []siteRun{}
  for _, run := range runs {
    if n := len(merged); n > 0 {
      gap := series.Positions[run.first] - (series.Positions[merged[n-1].last] + 1)
      if gap <= params.MinGap {
        merged[n-1].last = run.last
        continue
      }
    }
    merged = append(merged, run)
  }
  regions := []Region{}
  for _, run := range merged {
    nsites := run.last - run.first + 1
    if nsites < params.MinSites {
      continue
    }
    regions = append(regions, Region{
      Seqname  : series.Anchor.Seqname,
      Range    : NewRange(series.Positions[run.first], series.Positions[run.last]+1),
      Direction: direction,
      NSites   : nsites,
      Distance : memberDistance(series.Distances[run.first:run.last+1], direction),
      MeanScore: meanScore(scores[run.first:run.last+1]),
      Anchor   : series.Anchor })
  }
  return regions
}

func memberDistance(distances []int, direction Direction) int {
  result := distances[0]
  for _, distance := range distances[1:] {
    if direction == Positive {
      if distance > result {
        result = distance
      }
    } else {
      if distance < result {
        result = distance
      }
    }
  }
  return result
}

func meanScore(scores []float64) float64 {
  data := []float64{}
  for _, score := range scores {
    if !math.IsNaN(score) {
      data = append(data, score)
    }
  }
  if mean, err := stats.Mean(data); err == nil {
    return mean
  }
  return math.NaN()
}

/* -------------------------------------------------------------------------- */

type sortRegions []Region

func (obj sortRegions) Len() int {
  return len(obj)
}

func (obj sortRegions) Less(i, j int) bool {
  if obj[i].From != obj[j].From {
    return obj[i].From < obj[j].From
  }
  if obj[i].To != obj[j].To {
    return obj[i].To < obj[j].To
  }
  return obj[i].Direction < obj[j].Direction
}

func (obj sortRegions) Swap(i, j int) {
  obj[i], obj[j] = obj[j], obj[i]
}
