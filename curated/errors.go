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

package curated

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// curatedError implements the error interface. The pattern is kept so that
// errors can be identified by the pattern that created them.
type curatedError struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is not formatted until
// Error() is called.
func Errorf(pattern string, values ...any) error {
	return &curatedError{
		pattern: pattern,
		values:  values,
	}
}

// Error formats the pattern with the values. Adjacent parts of the message
// chain that are the same are reduced to one.
func (e *curatedError) Error() string {
	parts := strings.Split(fmt.Sprintf(e.pattern, e.values...), ": ")
	return strings.Join(slices.Compact(parts), ": ")
}

// Unwrap returns the first value that is an error.
func (e *curatedError) Unwrap() error {
	for _, v := range e.values {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

func outermost(err error) *curatedError {
	var e *curatedError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsAny returns true if a curated error is anywhere in the error chain.
func IsAny(err error) bool {
	return outermost(err) != nil
}

// Is returns true if the outermost curated error in the chain was created
// with the pattern. The curated error may itself be wrapped by a plain
// error.
func Is(err error, pattern string) bool {
	e := outermost(err)
	return e != nil && e.pattern == pattern
}

// Has returns true if any curated error in the chain was created with the
// pattern.
func Has(err error, pattern string) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*curatedError); ok && e.pattern == pattern {
			return true
		}
	}
	return false
}
