// SPDX-License-Identifier: MIT

package integral

import (
	"slices"
	"strconv"
	"strings"
)

// Key identifies one integral configuration: the variables integrated
// analytically and the normalisation set. Keys compare by value and ignore
// the order and multiplicity of names; a nil and an empty set are equal.
type Key struct {
	intVars  string // normalised, each name as "<len>:<name>"
	normVars string
}

// NewKey builds the normalised key for the two variable sets.
func NewKey(intVars, normVars []string) Key {
	return Key{intVars: canonical(intVars), normVars: canonical(normVars)}
}

// canonical sorts and de-duplicates names and length-prefixes each one, so
// no name content can make two different sets encode alike.
func canonical(names []string) string {
	s := slices.Clone(names)
	slices.Sort(s)
	s = slices.Compact(s)

	var sb strings.Builder
	for _, n := range s {
		sb.WriteString(strconv.Itoa(len(n)))
		sb.WriteByte(':')
		sb.WriteString(n)
	}

	return sb.String()
}

func split(s string) []string {
	var out []string
	for s != "" {
		colon := strings.IndexByte(s, ':')
		n, _ := strconv.Atoi(s[:colon])
		s = s[colon+1:]
		out = append(out, s[:n])
		s = s[n:]
	}

	return out
}

// IntVars returns the sorted integration variable names.
func (k Key) IntVars() []string { return split(k.intVars) }

// NormVars returns the sorted normalisation variable names.
func (k Key) NormVars() []string { return split(k.normVars) }

// String renders the key for logs, e.g. "int[x,y] norm[x]".
func (k Key) String() string {
	return "int[" + strings.Join(k.IntVars(), ",") + "] norm[" + strings.Join(k.NormVars(), ",") + "]"
}
