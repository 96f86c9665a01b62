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

import "bufio"
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

/* i/o
 * -------------------------------------------------------------------------- */

// Read anchors from a whitespace separated table with columns: Name,
// Seqname, Strand, TranscriptStart, TranscriptEnd. Every row yields an
// anchor at the transcription start site of the transcript, with the
// given window extents.
func ReadAnchors(reader io.Reader, upstream, downstream int) ([]Anchor, error) {
  anchors := []Anchor{}
  scanner := bufio.NewScanner(reader)

  for scanner.Scan() {
    if err := scanner.Err(); err != nil {
      return nil, err
    }
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 5 {
      return nil, fmt.Errorf("file must have five columns")
    }
    t1, err := strconv.ParseInt(fields[3], 10, 64)
    if err != nil {
      return nil, err
    }
    t2, err := strconv.ParseInt(fields[4], 10, 64)
    if err != nil {
      return nil, err
    }
    if fields[2] != "+" && fields[2] != "-" {
      return nil, fmt.Errorf("anchor `%s' has no strand information", fields[0])
    }
    anchors = append(anchors,
      TSSAnchor(fields[0], fields[1], int(t1), int(t2), fields[2][0], upstream, downstream))
  }
  return anchors, nil
}

func ImportAnchors(filename string, upstream, downstream int) ([]Anchor, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return nil, err
    }
    defer g.Close()
    return ReadAnchors(g, upstream, downstream)
  }
  return ReadAnchors(f, upstream, downstream)
}
