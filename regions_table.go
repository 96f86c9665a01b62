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
import "bytes"
import "fmt"
import "io"

/* i/o
 * -------------------------------------------------------------------------- */

// Write regions as a whitespace separated table with columns seqname,
// from, to, direction, sites, distance, meanScore, anchor, and
// anchorPos.
func (regions RegionList) WriteTable(writer io.Writer, header bool) error {
  if header {
    _, err := fmt.Fprintf(writer,
      "seqname\tfrom\tto\tdirection\tsites\tdistance\tmeanScore\tanchor\tanchorPos\n")
    if err != nil {
      return err
    }
  }
  for _, region := range regions {
    _, err := fmt.Fprintf(writer, "%s\t%d\t%d\t%s\t%d\t%d\t%s\t%s\t%d\n",
      region.Seqname, region.From, region.To, region.Direction, region.NSites,
      region.Distance, formatFloatNA(region.MeanScore), region.Anchor.Name, region.Anchor.Pos)
    if err != nil {
      return err
    }
  }
  return nil
}

func (regions RegionList) ExportTable(filename string, header, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := regions.WriteTable(w, header); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

// Export regions as bed file with six columns. The name column holds
// the anchor name and the region direction, the score column the
// number of member sites, and the strand column the strand of the
// anchor.
func (regions RegionList) WriteBed6(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)

  for _, region := range regions {
    fmt.Fprintf(w,   "%s", region.Seqname)
    fmt.Fprintf(w, "\t%d", region.From)
    fmt.Fprintf(w, "\t%d", region.To)
    fmt.Fprintf(w, "\t%s|%s", region.Anchor.Name, region.Direction)
    fmt.Fprintf(w, "\t%d", region.NSites)
    fmt.Fprintf(w, "\t%c", region.Anchor.Strand)
    fmt.Fprintf(w, "\n")
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
