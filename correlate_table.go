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

// Write pair correlations as a whitespace separated table with columns
// name1, name2, n, cor, pvalue, and qvalue. Undefined values are
// printed as `NA'.
func (records PairCorList) WriteTable(writer io.Writer, header bool) error {
  if header {
    if _, err := fmt.Fprintf(writer, "name1\tname2\tn\tcor\tpvalue\tqvalue\n"); err != nil {
      return err
    }
  }
  for _, record := range records {
    _, err := fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\t%s\n",
      record.Name1, record.Name2, record.N,
      formatFloatNA(record.R), formatFloatNA(record.P), formatFloatNA(record.Q))
    if err != nil {
      return err
    }
  }
  return nil
}

func (records PairCorList) ExportTable(filename string, header, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := records.WriteTable(w, header); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
