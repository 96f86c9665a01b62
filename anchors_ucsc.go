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

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* import anchors from ucsc
 * -------------------------------------------------------------------------- */

// Import anchors from a gene table of the public UCSC MySQL server,
// e.g. genome `hg19' and table `knownGene'. Every gene yields an
// anchor located at its transcription start site.
func ImportAnchorsFromUCSC(genome, table string, upstream, downstream int) ([]Anchor, error) {
  anchors := []Anchor{}
  /* variables for storing a single database row */
  var i_name, i_seqname, i_strand string
  var i_txFrom, i_txTo int

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return nil, err
  }
  defer db.Close()

  err = db.Ping()
  if err != nil {
    return nil, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, chrom, strand, txStart, txEnd FROM %s", table))
  if err != nil {
    return nil, err
  }
  defer rows.Close()
  for rows.Next() {
    err := rows.Scan(&i_name, &i_seqname, &i_strand, &i_txFrom, &i_txTo)
    if err != nil {
      return nil, err
    }
    if len(i_strand) == 0 || (i_strand[0] != '+' && i_strand[0] != '-') {
      return nil, fmt.Errorf("anchor `%s' has no strand information", i_name)
    }
    anchors = append(anchors,
      TSSAnchor(i_name, i_seqname, i_txFrom, i_txTo, i_strand[0], upstream, downstream))
  }
  return anchors, nil
}
