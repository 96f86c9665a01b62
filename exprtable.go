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
import "sort"
import "strings"

/* -------------------------------------------------------------------------- */

// Expression values for a set of transcripts, one value per sample.
// Transcripts are keyed by name.
type ExprTable struct {
  Samples []string
  Data    map[string][]float64
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewExprTable(samples []string) ExprTable {
  data := make(map[string][]float64)
  return ExprTable{samples, data}
}

/* -------------------------------------------------------------------------- */

func (table ExprTable) Length() int {
  return len(table.Data)
}

func (table ExprTable) Set(name string, values []float64) error {
  if len(values) != len(table.Samples) {
    return fmt.Errorf("%w: transcript `%s' has %d values but table has %d samples",
      ErrDimensionMismatch, name, len(values), len(table.Samples))
  }
  table.Data[name] = values
  return nil
}

func (table ExprTable) Get(name string) (ExprVector, bool) {
  values, ok := table.Data[name]
  if !ok {
    return ExprVector{}, false
  }
  return ExprVector{table.Samples, values}, true
}

func (table ExprTable) Names() []string {
  names := []string{}
  for name, _ := range table.Data {
    names = append(names, name)
  }
  sort.Strings(names)
  return names
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read an expression table in whitespace separated format. The first
// line lists the sample names, every following line holds a transcript
// name and one expression value per sample. Missing values are encoded
// as `NA'.
func (table *ExprTable) ReadTable(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  if !scanner.Scan() {
    return fmt.Errorf("file is empty")
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  samples := strings.Fields(scanner.Text())
  if len(samples) == 0 {
    return fmt.Errorf("header has no sample names")
  }
  *table = NewExprTable(samples)

  for scanner.Scan() {
    if err := scanner.Err(); err != nil {
      return err
    }
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != len(samples)+1 {
      return fmt.Errorf("transcript `%s' has %d columns, expected %d",
        fields[0], len(fields)-1, len(samples))
    }
    values := make([]float64, len(samples))
    for i := 0; i < len(samples); i++ {
      v, err := parseFloatNA(fields[i+1])
      if err != nil {
        return err
      }
      values[i] = v
    }
    if err := table.Set(fields[0], values); err != nil {
      return err
    }
  }
  return nil
}

func (table *ExprTable) ImportTable(filename string) error {
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
    return table.ReadTable(g)
  }
  return table.ReadTable(f)
}
