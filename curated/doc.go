// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package curated provides the error type used by the packages that load
// programs, preferences and snapshots. The hardware packages never return
// errors.
//
// Curated errors are created with Errorf(). The first argument is a pattern
// rather than a format because the pattern identifies the error. Packages
// declare their patterns as constants:
//
//	const UnexpectedHash = "cartridgeloader: unexpected hash value (%s)"
//
//	return curated.Errorf(UnexpectedHash, hash)
//
// The pattern is then tested with Is(), or with Has() when the error may have
// been wrapped by another curated error:
//
//	if curated.Has(err, cartridgeloader.UnexpectedHash) {
//		...
//	}
//
// When an error message is built from a chain of curated errors, adjacent
// parts that repeat are removed. A pattern of "prefs: %v" wrapping an error
// with the message "prefs: key not valid" produces:
//
//	prefs: key not valid
//
// and not:
//
//	prefs: prefs: key not valid
//
// Unwrap() returns the first value that is an error so errors.Is() and
// errors.As() from the standard library see through curated errors.
package curated
