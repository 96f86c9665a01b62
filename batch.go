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

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// Result of the per-anchor pipeline. If Err is non-nil the anchor
// could not be processed and the remaining fields are empty, an error
// for one anchor never affects other anchors.
type AnchorResult struct {
  Anchor  Anchor
  Cors    AnchorCors
  Regions RegionList
  Err     error
}

type BatchParams struct {
  Method  CorMethod
  Adjust  string
  Region  RegionParams
  Threads int
}

func DefaultBatchParams() BatchParams {
  return BatchParams{
    Method : Pearson,
    Adjust : "none",
    Region : DefaultRegionParams(),
    Threads: 1 }
}

func (params BatchParams) check() error {
  switch params.Method {
  case Pearson, Spearman:
  default:
    return fmt.Errorf("%w: `%d'", ErrInvalidMethod, int(params.Method))
  }
  if params.Adjust != "" && params.Adjust != "none" {
    if _, err := AdjustPValues(nil, params.Adjust); err != nil {
      return err
    }
  }
  return params.Region.check()
}

/* -------------------------------------------------------------------------- */

// Run the per-anchor pipeline for all anchors on a pool of worker
// threads. Anchors are processed independently, the i-th result always
// belongs to the i-th anchor regardless of the order of completion.
// Failures of individual anchors are recorded in the result and do not
// abort the batch, only invalid global parameters are fatal.
func RunAnchors(meth MethMatrix, expr ExprTable, anchors []Anchor, params BatchParams) ([]AnchorResult, error) {
  if err := params.check(); err != nil {
    return nil, err
  }
  threads := params.Threads
  if threads < 1 {
    threads = 1
  }
  results := make([]AnchorResult, len(anchors))

  pool := threadpool.New(threads, 100*threads)
  pool.RangeJob(0, len(anchors), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    results[i] = processAnchor(meth, expr, anchors[i], params)
    return nil
  })
  return results, nil
}

func processAnchor(meth MethMatrix, expr ExprTable, anchor Anchor, params BatchParams) AnchorResult {
  result := AnchorResult{Anchor: anchor}

  vector, ok := expr.Get(anchor.Name)
  if !ok {
    result.Err = fmt.Errorf("anchor `%s': no expression data", anchor.Name)
    return result
  }
  cors, err := ComputeAnchorCors(meth, vector, anchor, params.Method, params.Adjust)
  if err != nil {
    result.Err = err
    return result
  }
  result.Cors = cors

  regions, err := FindTMRs(cors, params.Region)
  if err != nil {
    result.Err = err
    return result
  }
  result.Regions = regions
  return result
}

// Collect the regions of all successfully processed anchors, in anchor
// order.
func CollectRegions(results []AnchorResult) RegionList {
  regions := RegionList{}
  for _, result := range results {
    if result.Err != nil {
      continue
    }
    regions = append(regions, result.Regions...)
  }
  return regions
}
