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

// Package logger is the central log for glesbench. Log entries are tagged
// with a short string identifying the part of the program making the entry.
// Repeated entries are collapsed into a single entry with a repeat count.
//
// Logging goes through the central logger with the package level Log() and
// Logf() functions. Entries are not printed by default, the SetEcho() function
// will cause entries to be written to the specified io.Writer as they are
// made.
//
// Every log call takes a Permission. The Allow value can be used when logging
// should always take place.
package logger
