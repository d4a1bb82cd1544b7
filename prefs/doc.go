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

// Package prefs holds preference values that can be changed from the command
// line.
//
// Preference values are added to a Collection with a key. The values of keys
// found on the command line stack replace the values in the collection when
// ApplyCommandLine() is called.
//
// The command line stack is a stack of groups of key/value pairs. A group is
// created from a string of the form:
//
//	key::value; key::value
//
// Values are removed from the top group as they are used, so it is possible
// to find out which values were not recognised by popping the group once all
// collections have been applied.
package prefs
