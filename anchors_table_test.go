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
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestReadAnchors1(t *testing.T) {

  anchors, err := ImportAnchors("anchors_test.table", 100, 50)
  if err != nil {
    t.Error("TestReadAnchors1 failed!")
  }
  if len(anchors) != 3 {
    t.Error("TestReadAnchors1 failed!")
  }
  if anchors[0].Name != "tr1" || anchors[0].Seqname != "chr1" {
    t.Error("TestReadAnchors1 failed!")
  }
  if anchors[0].Pos != 1000 || anchors[0].Strand != '+' {
    t.Error("TestReadAnchors1 failed!")
  }
  if anchors[0].Upstream != 100 || anchors[0].Downstream != 50 {
    t.Error("TestReadAnchors1 failed!")
  }
  // the anchor of a transcript on the minus strand is located at the
  // end of the transcript
  if anchors[1].Pos != 3999 || anchors[1].Strand != '-' {
    t.Error("TestReadAnchors1 failed!")
  }
  if anchors[2].Seqname != "chr2" || anchors[2].Pos != 5000 {
    t.Error("TestReadAnchors1 failed!")
  }
}

func TestReadAnchors2(t *testing.T) {

  if _, err := ReadAnchors(strings.NewReader("tr1 chr1 . 100 200\n"), 100, 100); err == nil {
    t.Error("TestReadAnchors2 failed!")
  }
  if _, err := ReadAnchors(strings.NewReader("tr1 chr1 + 100\n"), 100, 100); err == nil {
    t.Error("TestReadAnchors2 failed!")
  }
  if _, err := ReadAnchors(strings.NewReader("tr1 chr1 + xxx 200\n"), 100, 100); err == nil {
    t.Error("TestReadAnchors2 failed!")
  }
  // empty lines are skipped
  if anchors, err := ReadAnchors(strings.NewReader("\ntr1 chr1 + 100 200\n\n"), 100, 100); err != nil || len(anchors) != 1 {
    t.Error("TestReadAnchors2 failed!")
  }
}
