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

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.toml"

// WarningBoilerPlate is the first line of every preferences file written by
// Save(). It is a TOML comment.
const WarningBoilerPlate = "# *** do not edit this file while the emulator is running ***"

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: key %s has already been added"
	InvalidKey   = "prefs: key %q is not valid"
	DiskLoad     = "prefs: load: %v"
	DiskSave     = "prefs: save: %v"
	DiskValue    = "prefs: %s: %v"
)

// Disk represents preference values as stored on disk. Values are grouped
// by the dotted prefix of their key when they are written to the file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskLoad, "no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. The key
// is a dotted path (eg. "recompiler.enabled").
func (dsk *Disk) Add(key string, p pref) error {
	if !validKey(key) {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Load preference values from disk and then apply any values from the top of
// the command line stack. A missing preferences file is not an error.
func (dsk *Disk) Load() error {
	stored, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskLoad, err)
	}

	for _, k := range dsk.keys() {
		if v, ok := stored[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(DiskValue, k, err)
			}
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(DiskValue, k, err)
			}
			logger.Logf(logger.Allow, "prefs", "%s set from command line (%v)", k, v)
		}
	}

	return nil
}

// Save current preference values to disk. Values in the file that have not
// been added to this Disk are preserved.
func (dsk *Disk) Save() error {
	stored, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskSave, err)
	}

	for k, p := range dsk.entries {
		stored[k] = p.stored()
	}

	tree, err := unflatten(stored)
	if err != nil {
		return curated.Errorf(DiskSave, err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskSave, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Logf(logger.Allow, "prefs", "closing %s: %v", dsk.path, err)
		}
	}()

	if _, err := fmt.Fprintln(f, WarningBoilerPlate); err != nil {
		return curated.Errorf(DiskSave, err)
	}

	if err := toml.NewEncoder(f).Encode(tree); err != nil {
		return curated.Errorf(DiskSave, err)
	}

	return nil
}

// read the preferences file and return its values keyed by dotted path.
func (dsk *Disk) read() (map[string]any, error) {
	var tree map[string]any
	if _, err := toml.DecodeFile(dsk.path, &tree); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]any), nil
		}
		return nil, err
	}

	flat := make(map[string]any)
	flatten("", tree, flat)
	return flat, nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, p := range strings.Split(key, ".") {
		if p == "" || strings.ContainsAny(p, " \t:;") {
			return false
		}
	}
	return true
}

func flatten(prefix string, tree map[string]any, flat map[string]any) {
	for k, v := range tree {
		if prefix != "" {
			k = prefix + "." + k
		}
		if t, ok := v.(map[string]any); ok {
			flatten(k, t, flat)
			continue
		}
		flat[k] = v
	}
}

func unflatten(flat map[string]any) (map[string]any, error) {
	tree := make(map[string]any)
	for k, v := range flat {
		parts := strings.Split(k, ".")
		t := tree
		for _, p := range parts[:len(parts)-1] {
			switch n := t[p].(type) {
			case nil:
				m := make(map[string]any)
				t[p] = m
				t = m
			case map[string]any:
				t = n
			default:
				return nil, fmt.Errorf("%s is both a value and a table", k)
			}
		}
		leaf := parts[len(parts)-1]
		if _, ok := t[leaf].(map[string]any); ok {
			return nil, fmt.Errorf("%s is both a value and a table", k)
		}
		t[leaf] = v
	}
	return tree, nil
}
