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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of flag.FlagSet.PrintDefaults() so that it
// can be amended before being shown to the user.
type helpWriter struct {
	buffer strings.Builder
}

// Write buffers all output.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}

// printDefaults writes the usage banner and flag defaults of flags to the
// helpWriter, omitting any flag in the aliases map.
func (hw *helpWriter) printDefaults(flags *flag.FlagSet, aliases map[string]string) {
	tmp := flag.NewFlagSet("", flag.ContinueOnError)
	tmp.SetOutput(hw)
	flags.VisitAll(func(f *flag.Flag) {
		if _, ok := aliases[f.Name]; ok {
			return
		}
		tmp.Var(f.Value, f.Name, f.Usage)
		tmp.Lookup(f.Name).DefValue = f.DefValue
	})
	fmt.Fprintln(hw, "Usage:")
	tmp.PrintDefaults()
}

func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, aliases []string, additionalHelp string) {
	s := hw.buffer.String()

	if s == "Usage:\n" && len(subModes) == 0 {
		if banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")

	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], banner)
	} else {
		fmt.Fprintln(output, lines[0])
	}

	flagLines := len(lines) - 1
	for _, l := range lines[1:] {
		fmt.Fprintln(output, l)
	}

	if len(aliases) > 0 {
		fmt.Fprintf(output, "\n  short flags: %s\n", strings.Join(aliases, ", "))
	}

	if len(subModes) > 0 {
		if flagLines > 0 || len(aliases) > 0 {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
