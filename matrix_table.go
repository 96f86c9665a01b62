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

// Read a methylation matrix in whitespace separated format. The first
// line holds the column names seqname and pos followed by one sample
// name per column. Every following line holds one methylation site
// with its sequence name, position, and one value per sample. Sites
// must be sorted by sequence name and position, missing values are
// encoded as `NA'.
func (matrix *SimpleMethMatrix) ReadTable(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  if !scanner.Scan() {
    return fmt.Errorf("file is empty")
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  fields := strings.Fields(scanner.Text())
  if len(fields) < 3 {
    return fmt.Errorf("header must have at least three columns")
  }
  *matrix = NewSimpleMethMatrix(fields[2:])

  // collect consecutive rows of one sequence before adding them to
  // the matrix
  seqname   := ""
  positions := []int{}
  values    := [][]float64{}

  flush := func() error {
    if seqname == "" {
      return nil
    }
    return matrix.AddSites(seqname, positions, values)
  }
  for scanner.Scan() {
    if err := scanner.Err(); err != nil {
      return err
    }
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != len(matrix.Samples)+2 {
      return fmt.Errorf("site `%s:%s' has %d values but matrix has %d samples",
        fields[0], fields[1], len(fields)-2, len(matrix.Samples))
    }
    t, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return err
    }
    row := make([]float64, len(matrix.Samples))
    for i := 0; i < len(row); i++ {
      v, err := parseFloatNA(fields[i+2])
      if err != nil {
        return err
      }
      row[i] = v
    }
    if fields[0] != seqname {
      if err := flush(); err != nil {
        return err
      }
      seqname   = fields[0]
      positions = []int{}
      values    = [][]float64{}
    }
    positions = append(positions, int(t))
    values    = append(values,    row)
  }
  return flush()
}

func (matrix *SimpleMethMatrix) ImportTable(filename string) error {
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    return matrix.ReadTable(g)
  }
  return matrix.ReadTable(f)
}
