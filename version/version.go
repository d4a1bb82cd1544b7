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

// Package version reports the version of the program. The version number is
// set at link time and the revision is taken from the build information
// embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "glesbench"

// set with -ldflags "-X github.com/jetsetilly/glesbench/version.number=v1.0"
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// If the version string is "unreleased" then the program has been built from
// a repository without a version number. If the version is "local" then there
// is no version number and no vcs information, which happens when running
// with "go run ."
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns the application name and version in a form suitable for
// the -version flag.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

// revisionFromBuildInfo returns the vcs revision from the build settings and
// whether vcs information was present at all. A modified working tree is
// indicated with a "+dirty" suffix.
func revisionFromBuildInfo(settings []debug.BuildSetting) (string, bool) {
	var vcs bool
	var rev string
	var modified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if rev == "" {
		return "no revision information", vcs
	}
	if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}
	return rev, vcs
}

func init() {
	var vcs bool

	if info, ok := debug.ReadBuildInfo(); ok {
		revision, vcs = revisionFromBuildInfo(info.Settings)
	} else {
		revision = "no revision information"
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
