package icons

import "strconv"

// Name identifies an icon. The zero value is Blank.
type Name uint16

// String returns the variant spelling, for example "Print".
func (n Name) String() string {
	if int(n) < len(nameStrings) {
		return nameStrings[n]
	}
	return "Name(" + strconv.Itoa(int(n)) + ")"
}

// Valid reports whether n is a declared icon.
func (n Name) Valid() bool {
	return int(n) < len(nameStrings)
}

var namesByString = func() map[string]Name {
	byString := make(map[string]Name, len(nameStrings))
	for i, s := range nameStrings {
		byString[s] = Name(i)
	}
	return byString
}()

// Names returns every icon in registry order, starting with Blank.
func Names() []Name {
	result := make([]Name, len(nameStrings))
	for i := range nameStrings {
		result[i] = Name(i)
	}
	return result
}

// ParseName returns the icon whose variant spelling is exactly s.
func ParseName(s string) (Name, bool) {
	name, ok := namesByString[s]
	return name, ok
}
