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

import "errors"

/* -------------------------------------------------------------------------- */

// Errors are wrapped with fmt.Errorf("...: %w", err) so that callers can
// test for them with errors.Is(). Errors of the first three kinds indicate
// invalid input and abort a computation, whereas the remaining two occur
// for individual anchors and are typically skipped.
var (
  ErrDimensionMismatch   = errors.New("dimension mismatch")
  ErrInvalidMethod       = errors.New("invalid method")
  ErrInvalidSeqname      = errors.New("invalid seqname")
  ErrNoSitesInWindow     = errors.New("no methylation sites in window")
  ErrInsufficientSamples = errors.New("insufficient number of shared samples")
)
