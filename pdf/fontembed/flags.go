/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"strings"
)

// FlagOptions holds the font classification options encoded in the descriptor Flags entry.
// See section 9.8.2 of PDF 32000-1:2008.
type FlagOptions struct {
	FixedPitch  bool
	Serif       bool
	Symbolic    bool
	Script      bool
	Nonsymbolic bool
	Italic      bool
	AllCap      bool
	SmallCap    bool
	ForceBold   bool
}

// FlagWord is the value of the descriptor Flags entry.
type FlagWord uint32

// Descriptor flag bits, bit 1 being the least significant.
const (
	FlagFixedPitch  FlagWord = 1 << 0  // bit 1
	FlagSerif       FlagWord = 1 << 1  // bit 2
	FlagSymbolic    FlagWord = 1 << 2  // bit 3
	FlagScript      FlagWord = 1 << 3  // bit 4
	FlagNonsymbolic FlagWord = 1 << 5  // bit 6
	FlagItalic      FlagWord = 1 << 6  // bit 7
	FlagAllCap      FlagWord = 1 << 16 // bit 17
	FlagSmallCap    FlagWord = 1 << 17 // bit 18
	FlagForceBold   FlagWord = 1 << 18 // bit 19
)

// flagTable lists the options in bit order.
var flagTable = []struct {
	name  string
	flag  FlagWord
	field func(o *FlagOptions) *bool
}{
	{"FixedPitch", FlagFixedPitch, func(o *FlagOptions) *bool { return &o.FixedPitch }},
	{"Serif", FlagSerif, func(o *FlagOptions) *bool { return &o.Serif }},
	{"Symbolic", FlagSymbolic, func(o *FlagOptions) *bool { return &o.Symbolic }},
	{"Script", FlagScript, func(o *FlagOptions) *bool { return &o.Script }},
	{"Nonsymbolic", FlagNonsymbolic, func(o *FlagOptions) *bool { return &o.Nonsymbolic }},
	{"Italic", FlagItalic, func(o *FlagOptions) *bool { return &o.Italic }},
	{"AllCap", FlagAllCap, func(o *FlagOptions) *bool { return &o.AllCap }},
	{"SmallCap", FlagSmallCap, func(o *FlagOptions) *bool { return &o.SmallCap }},
	{"ForceBold", FlagForceBold, func(o *FlagOptions) *bool { return &o.ForceBold }},
}

// Encode returns the flag word with the bit of every true option set.
func (o FlagOptions) Encode() FlagWord {
	var flags FlagWord
	for _, entry := range flagTable {
		if *entry.field(&o) {
			flags |= entry.flag
		}
	}
	return flags
}

// Options decodes `w`. Reserved bits are ignored.
func (w FlagWord) Options() FlagOptions {
	var o FlagOptions
	for _, entry := range flagTable {
		*entry.field(&o) = w&entry.flag != 0
	}
	return o
}

// String returns the names of the set flags separated by '|', e.g. "Serif|Italic".
func (w FlagWord) String() string {
	var names []string
	for _, entry := range flagTable {
		if w&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseFlagOptions builds FlagOptions from named entries. Names are matched case-insensitively;
// an unknown name is an ErrInputValidation error.
func ParseFlagOptions(named map[string]bool) (FlagOptions, error) {
	var o FlagOptions
	for name, val := range named {
		field := lookupFlag(name)
		if field == nil {
			return FlagOptions{}, validationError("unknown font flag %q", name)
		}
		*field(&o) = val
	}
	return o, nil
}

// ParseFlagList parses a comma separated list of flag names, e.g. "Serif,Italic", setting each
// listed option. Empty entries are skipped.
func ParseFlagList(list string) (FlagOptions, error) {
	named := map[string]bool{}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		named[name] = true
	}
	return ParseFlagOptions(named)
}

func lookupFlag(name string) func(o *FlagOptions) *bool {
	for _, entry := range flagTable {
		if strings.EqualFold(entry.name, name) {
			return entry.field
		}
	}
	return nil
}

// SuggestFlags derives flag options from the font. Fonts using a symbol character map are
// Symbolic, all others Nonsymbolic. FixedPitch and Italic are taken from the style hints when
// `m` has them, Italic also follows a non-zero italic angle. Serif, Script, AllCap, SmallCap and
// ForceBold cannot be told from the metrics and are left to the caller.
func SuggestFlags(m FontMetrics) FlagOptions {
	var o FlagOptions
	if hints, ok := m.(StyleHints); ok {
		o.FixedPitch = hints.IsFixedPitch()
		o.Italic = hints.IsItalic()
	}
	if m.ItalicAngle() != 0 {
		o.Italic = true
	}

	if sym, ok := m.(interface{ IsSymbolic() bool }); ok && sym.IsSymbolic() {
		o.Symbolic = true
	} else {
		o.Nonsymbolic = true
	}
	return o
}
