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

package prefs

import (
	"fmt"
	"io"

	"github.com/jetsetilly/glesbench/curated"
)

// Sentinal errors returned by the Collection type.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	CommandLine  = "prefs: command line: %s: %v"
)

// Collection is a set of preference values, each with a unique key.
type Collection struct {
	entries map[string]pref

	// keys in the order they were added
	keys []string
}

// NewCollection is the preferred method of initialisation for the
// Collection type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]pref),
	}
}

// Add a preference value to the collection.
func (c *Collection) Add(key string, p pref) error {
	if _, ok := c.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	c.entries[key] = p
	c.keys = append(c.keys, key)
	return nil
}

// Keys returns the keys in the order they were added.
func (c *Collection) Keys() []string {
	return append([]string{}, c.keys...)
}

// ApplyCommandLine sets the values in the collection from the top group of
// the command line stack. Values used are removed from the stack.
func (c *Collection) ApplyCommandLine() error {
	for _, key := range c.keys {
		if ok, v := GetCommandLinePref(key); ok {
			if err := c.entries[key].Set(v); err != nil {
				return curated.Errorf(CommandLine, key, err)
			}
		}
	}
	return nil
}

// Write every key and value in the collection to the io.Writer.
func (c *Collection) Write(output io.Writer) {
	for _, key := range c.keys {
		fmt.Fprintf(output, "%s::%s\n", key, c.entries[key].String())
	}
}
