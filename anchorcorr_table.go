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

// Write site correlations as a whitespace separated table with columns
// pos, distance, n, cor, and pvalue, followed by qvalue if an
// adjustment method was applied. If header is true, the anchor is
// recorded on a leading comment line. Undefined values are printed as
// `NA'.
func (cors AnchorCors) WriteTable(writer io.Writer, header bool) error {
  qvalues := cors.Adjust != "" && cors.Adjust != "none"

  if header {
    _, err := fmt.Fprintf(writer, "# anchor %s %s:%d%c\n",
      cors.Anchor.Name, cors.Anchor.Seqname, cors.Anchor.Pos, cors.Anchor.Strand)
    if err != nil {
      return err
    }
    columns := "pos\tdistance\tn\tcor\tpvalue"
    if qvalues {
      columns += "\tqvalue"
    }
    if _, err := fmt.Fprintf(writer, "%s\n", columns); err != nil {
      return err
    }
  }
  for _, site := range cors.Sites {
    _, err := fmt.Fprintf(writer, "%d\t%d\t%d\t%s\t%s",
      site.Pos, site.Distance, site.N, formatFloatNA(site.R), formatFloatNA(site.P))
    if err != nil {
      return err
    }
    if qvalues {
      if _, err := fmt.Fprintf(writer, "\t%s", formatFloatNA(site.Q)); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(writer, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func (cors AnchorCors) ExportTable(filename string, header, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := cors.WriteTable(w, header); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
