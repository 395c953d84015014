package progopts

import "strconv"

// OptionKey addresses an option either by its short or by its long name
type OptionKey struct {
	short rune
	long  string
}

// Short addresses an option by its single-character name
func Short(name rune) OptionKey {
	return OptionKey{short: name}
}

// Long addresses an option by its long name
func Long(name string) OptionKey {
	return OptionKey{long: name}
}

// IsShort is true when the key was created with Short
func (k OptionKey) IsShort() bool {
	return k.short != 0
}

// String returns the key as it would be written on the command line
func (k OptionKey) String() string {
	if k.IsShort() {
		return "-" + string(k.short)
	}
	if k.long == "" {
		return strconv.Quote("")
	}

	return "--" + k.long
}
