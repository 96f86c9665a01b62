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

import "sort"

/* -------------------------------------------------------------------------- */

// Positions of methylation sites on a single sequence, sorted in
// ascending order.
type SiteIndex struct {
  Seqname   string
  Positions []int
}

// Methylation sites selected by an anchor window. Sites are ordered by
// genomic position. Distances are signed relative to the direction of
// transcription (see Anchor.Distance), Indices records the position of
// each site in the index it was selected from.
type SiteWindow struct {
  Anchor    Anchor
  Positions []int
  Distances []int
  Indices   []int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewSiteIndex(seqname string, positions []int) SiteIndex {
  for i := 1; i < len(positions); i++ {
    if positions[i-1] >= positions[i] {
      panic("NewSiteIndex(): positions must be sorted and free of duplicates")
    }
  }
  return SiteIndex{seqname, positions}
}

/* -------------------------------------------------------------------------- */

func (sites SiteIndex) Length() int {
  return len(sites.Positions)
}

// Select all sites that fall into the window of the given anchor. If
// the anchor is located on a different sequence or the window contains
// no sites, the result is an empty window.
func (sites SiteIndex) Window(anchor Anchor) SiteWindow {
  result := SiteWindow{Anchor: anchor}
  if sites.Seqname != anchor.Seqname {
    return result
  }
  span := anchor.Span()
  i := sort.SearchInts(sites.Positions, span.From)
  j := sort.SearchInts(sites.Positions, span.To)
  for k := i; k < j; k++ {
    result.Positions = append(result.Positions, sites.Positions[k])
    result.Distances = append(result.Distances, anchor.Distance(sites.Positions[k]))
    result.Indices   = append(result.Indices,   k)
  }
  return result
}

/* -------------------------------------------------------------------------- */

func (window SiteWindow) Length() int {
  return len(window.Positions)
}
