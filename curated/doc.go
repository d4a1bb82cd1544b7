// This file is part of glesbench.
//
// glesbench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glesbench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glesbench.  If not, see <https://www.gnu.org/licenses/>.

// Package curated creates errors that remember the pattern they were created
// with. Packages declare their patterns as exported constants:
//
//	const UnresolvedUniform = "stages: %s: unresolved uniform (%s)"
//
// and callers test for them with Is(), which looks at the outermost curated
// error, or Has(), which looks at every curated error in the chain:
//
//	err := curated.Errorf(UnresolvedUniform, "deinterlace", "offset")
//	wrapped := curated.Errorf("pipeline: %v", err)
//
//	curated.Is(wrapped, UnresolvedUniform)  // false
//	curated.Has(wrapped, UnresolvedUniform) // true
//
// Message parts are separated by a colon. Adjacent parts that are the same
// are removed when the message is formatted, so a package can prefix every
// error it returns with its own name without the message stuttering.
package curated
