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
import   "testing"

/* -------------------------------------------------------------------------- */

func TestAnchor1(t *testing.T) {

  // the TSS of a transcript on the plus strand is located at txFrom,
  // on the minus strand at txTo-1
  anchor1 := TSSAnchor("tr1", "chr1", 1000, 2000, '+', 100, 50)
  anchor2 := TSSAnchor("tr2", "chr1", 1000, 2000, '-', 100, 50)

  if anchor1.Pos != 1000 {
    t.Error("TestAnchor1 failed!")
  }
  if anchor2.Pos != 1999 {
    t.Error("TestAnchor1 failed!")
  }
}

func TestAnchor2(t *testing.T) {

  anchor1 := NewAnchor("tr1", "chr1", 300, '+', 100, 50)
  anchor2 := NewAnchor("tr2", "chr1", 300, '-', 100, 50)

  if span := anchor1.Span(); span.From != 200 || span.To != 351 {
    t.Error("TestAnchor2 failed!")
  }
  if span := anchor2.Span(); span.From != 250 || span.To != 401 {
    t.Error("TestAnchor2 failed!")
  }
}

func TestAnchor3(t *testing.T) {

  // distances are signed relative to the direction of transcription
  anchor1 := NewAnchor("tr1", "chr1", 300, '+', 100, 100)
  anchor2 := NewAnchor("tr2", "chr1", 300, '-', 100, 100)

  if anchor1.Distance(250) != -50 {
    t.Error("TestAnchor3 failed!")
  }
  if anchor1.Distance(350) !=  50 {
    t.Error("TestAnchor3 failed!")
  }
  if anchor2.Distance(250) !=  50 {
    t.Error("TestAnchor3 failed!")
  }
  if anchor2.Distance(350) != -50 {
    t.Error("TestAnchor3 failed!")
  }
  if anchor1.Distance(300) != 0 || anchor2.Distance(300) != 0 {
    t.Error("TestAnchor3 failed!")
  }
}

func TestSiteIndex1(t *testing.T) {

  sites  := NewSiteIndex("chr1", []int{100, 150, 200, 250, 300, 350, 400, 450, 500})
  anchor := NewAnchor("tr1", "chr1", 300, '+', 100, 100)

  window := sites.Window(anchor)
  if window.Length() != 5 {
    t.Error("TestSiteIndex1 failed!")
  }
  positions := []int{200, 250, 300, 350, 400}
  distances := []int{-100, -50, 0, 50, 100}
  for i := 0; i < window.Length(); i++ {
    if window.Positions[i] != positions[i] {
      t.Error("TestSiteIndex1 failed!")
    }
    if window.Distances[i] != distances[i] {
      t.Error("TestSiteIndex1 failed!")
    }
    if window.Indices[i] != i+2 {
      t.Error("TestSiteIndex1 failed!")
    }
  }
}

func TestSiteIndex2(t *testing.T) {

  // on the minus strand the window covers the mirrored interval and
  // distances flip sign
  sites  := NewSiteIndex("chr1", []int{100, 150, 200, 250, 300, 350, 400, 450, 500})
  anchor := NewAnchor("tr1", "chr1", 300, '-', 100, 100)

  window := sites.Window(anchor)
  if window.Length() != 5 {
    t.Error("TestSiteIndex2 failed!")
  }
  distances := []int{100, 50, 0, -50, -100}
  for i := 0; i < window.Length(); i++ {
    if window.Distances[i] != distances[i] {
      t.Error("TestSiteIndex2 failed!")
    }
  }
}

func TestSiteIndex3(t *testing.T) {

  sites := NewSiteIndex("chr1", []int{100, 150, 200})

  // anchor on a different sequence
  if window := sites.Window(NewAnchor("tr1", "chr2", 150, '+', 50, 50)); window.Length() != 0 {
    t.Error("TestSiteIndex3 failed!")
  }
  // window without sites
  if window := sites.Window(NewAnchor("tr2", "chr1", 500, '+', 50, 50)); window.Length() != 0 {
    t.Error("TestSiteIndex3 failed!")
  }
  // window boundaries are half-open
  if window := sites.Window(NewAnchor("tr3", "chr1", 150, '+', 50, 50)); window.Length() != 3 {
    t.Error("TestSiteIndex3 failed!")
  }
  if window := sites.Window(NewAnchor("tr4", "chr1", 150, '+', 49, 49)); window.Length() != 1 {
    t.Error("TestSiteIndex3 failed!")
  }
}
