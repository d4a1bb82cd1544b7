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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes (and sub-modes), each with its own set of flags, and short
// aliases for long flag names.
//
// Arguments are given with NewArgs() and processed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "stages")
//	p, err := md.Parse()
//
// Sub-mode comparisons are case insensitive and the first sub-mode is the
// default. If the first argument after any flags names a sub-mode then that
// mode is selected and Mode() returns it in upper case. Flags that are not
// recognised at this level also select the default sub-mode, leaving the
// arguments to be parsed again by the selected mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		depth := md.AddInt("depth", 24, "colour depth")
//		md.AddAlias("d", "depth")
//		p, err := md.Parse()
//		...
//		stages := md.RemainingArgs()
//	case "STAGES":
//		...
//	}
//
// Help is printed to Output when -help or -h is given and Parse() returns
// ParseHelp. Aliases are listed once as "short flags" rather than repeating
// the usage of the flag they stand for.
package modalflag
