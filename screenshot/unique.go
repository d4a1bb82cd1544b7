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

package screenshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename in dir that should not collide with an
// existing file, assuming a functioning clock. The file is not created.
//
// Format of the filename is:
//
//	prefix_description_YYYYMMDD_HHMMSS.ext
//
// If the description is empty then it is omitted along with its separator.
func UniqueFilename(dir string, prefix string, description string, ext string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	var fn string

	d := strings.TrimSpace(description)
	if len(d) > 0 {
		fn = fmt.Sprintf("%s_%s_%s", prefix, d, timestamp)
	} else {
		fn = fmt.Sprintf("%s_%s", prefix, timestamp)
	}

	return filepath.Join(dir, fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, ".")))
}

// ResolveFilename returns filename unchanged unless it names an existing
// directory, in which case a unique PNG filename in that directory is
// returned.
func ResolveFilename(filename string, prefix string, description string) string {
	if fi, err := os.Stat(filename); err == nil && fi.IsDir() {
		return UniqueFilename(filename, prefix, description, "png")
	}
	return filename
}
