// Package modifier models Java-style declaration modifiers and the rule tables
// deciding which modifiers each kind of declaration may carry.
package modifier

import (
	"strings"
)

// Modifier is a set of modifier flags.
type Modifier uint16

const (
	Public Modifier = 1 << iota
	Protected
	Private
	Abstract
	Static
	Final
	Transient
	Volatile
	Synchronized
	Native
	Strict
	Interface

	None Modifier = 0
)

// Visibility is the set of the three access modifiers.
const Visibility = Public | Protected | Private

var names = []struct {
	flag Modifier
	name string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Abstract, "abstract"},
	{Static, "static"},
	{Final, "final"},
	{Transient, "transient"},
	{Volatile, "volatile"},
	{Synchronized, "synchronized"},
	{Native, "native"},
	{Strict, "strictfp"},
	{Interface, "interface"},
}

func (m Modifier) IsPublic() bool       { return m&Public != 0 }
func (m Modifier) IsProtected() bool    { return m&Protected != 0 }
func (m Modifier) IsPrivate() bool      { return m&Private != 0 }
func (m Modifier) IsAbstract() bool     { return m&Abstract != 0 }
func (m Modifier) IsStatic() bool       { return m&Static != 0 }
func (m Modifier) IsFinal() bool        { return m&Final != 0 }
func (m Modifier) IsTransient() bool    { return m&Transient != 0 }
func (m Modifier) IsVolatile() bool     { return m&Volatile != 0 }
func (m Modifier) IsSynchronized() bool { return m&Synchronized != 0 }
func (m Modifier) IsNative() bool       { return m&Native != 0 }
func (m Modifier) IsStrict() bool       { return m&Strict != 0 }
func (m Modifier) IsInterface() bool    { return m&Interface != 0 }

// Has reports whether every flag of o is set in m.
func (m Modifier) Has(o Modifier) bool { return m&o == o && o != 0 }

// Names returns the flag names of m in canonical Java order.
func (m Modifier) Names() []string {
	out := make([]string, 0, 4)
	for _, n := range names {
		if m&n.flag != 0 {
			out = append(out, n.name)
		}
	}
	return out
}

// String renders m space-separated in canonical Java order.
func (m Modifier) String() string {
	return strings.Join(m.Names(), " ")
}

// Prefix renders m followed by a space, or "" when m is empty.
func (m Modifier) Prefix() string {
	if m == None {
		return ""
	}
	return m.String() + " "
}

// Parse reads a space or comma separated list of modifier names.
func Parse(s string) (Modifier, bool) {
	var m Modifier
	for _, word := range strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' }) {
		found := false
		for _, n := range names {
			if n.name == word || (n.flag == Strict && word == "strict") {
				m |= n.flag
				found = true
				break
			}
		}
		if !found {
			return None, false
		}
	}
	return m, true
}
