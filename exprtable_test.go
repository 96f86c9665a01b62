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
import   "errors"
import   "math"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestExprTable1(t *testing.T) {

  expr := ExprTable{}

  if err := expr.ImportTable("exprtable_test.table"); err != nil {
    t.Error("TestExprTable1 failed!")
  }
  if expr.Length() != 2 {
    t.Error("TestExprTable1 failed!")
  }
  if len(expr.Samples) != 3 || expr.Samples[0] != "s1" || expr.Samples[2] != "s3" {
    t.Error("TestExprTable1 failed!")
  }
  vector, ok := expr.Get("tr1")
  if !ok {
    t.Error("TestExprTable1 failed!")
  }
  if vector.Values[0] != 1.0 || vector.Values[1] != 2.0 || vector.Values[2] != 3.0 {
    t.Error("TestExprTable1 failed!")
  }
  // missing values are encoded as NA
  vector, ok = expr.Get("tr2")
  if !ok || !math.IsNaN(vector.Values[1]) {
    t.Error("TestExprTable1 failed!")
  }
  if _, ok := expr.Get("tr9"); ok {
    t.Error("TestExprTable1 failed!")
  }
  names := expr.Names()
  if len(names) != 2 || names[0] != "tr1" || names[1] != "tr2" {
    t.Error("TestExprTable1 failed!")
  }
}

func TestExprTable2(t *testing.T) {

  expr := NewExprTable([]string{"s1", "s2"})

  if err := expr.Set("tr1", []float64{1, 2}); err != nil {
    t.Error("TestExprTable2 failed!")
  }
  if err := expr.Set("tr2", []float64{1, 2, 3}); !errors.Is(err, ErrDimensionMismatch) {
    t.Error("TestExprTable2 failed!")
  }
}

func TestExprTable3(t *testing.T) {

  expr := ExprTable{}

  // rows must have one value per sample
  table := "s1 s2\n" +
           "tr1 1.0\n"
  if err := expr.ReadTable(strings.NewReader(table)); err == nil {
    t.Error("TestExprTable3 failed!")
  }
  if err := expr.ReadTable(strings.NewReader("")); err == nil {
    t.Error("TestExprTable3 failed!")
  }
}
