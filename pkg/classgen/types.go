package classgen

import (
	"strings"
	"unicode"
)

// Member types are semantic names: XML Schema built-ins ("string",
// "decimal"), Java names ("String", "BigDecimal") or anything else, which is
// passed through untouched.
var javaTypes = map[string]string{
	"string":               "String",
	"normalizedString":     "String",
	"token":                "String",
	"anyURI":               "String",
	"String":               "String",
	"java.lang.String":     "String",
	"boolean":              "boolean",
	"Boolean":              "boolean",
	"int":                  "int",
	"Integer":              "int",
	"long":                 "long",
	"Long":                 "long",
	"short":                "short",
	"byte":                 "byte",
	"double":               "double",
	"Double":               "double",
	"float":                "float",
	"Float":                "float",
	"decimal":              "java.math.BigDecimal",
	"BigDecimal":           "java.math.BigDecimal",
	"java.math.BigDecimal": "java.math.BigDecimal",
	"integer":              "java.math.BigInteger",
	"BigInteger":           "java.math.BigInteger",
	"java.math.BigInteger": "java.math.BigInteger",
}

var cppTypes = map[string]string{
	"string":               "std::string",
	"normalizedString":     "std::string",
	"token":                "std::string",
	"anyURI":               "std::string",
	"String":               "std::string",
	"java.lang.String":     "std::string",
	"boolean":              "bool",
	"Boolean":              "bool",
	"int":                  "int",
	"Integer":              "int",
	"long":                 "long long",
	"Long":                 "long long",
	"short":                "short",
	"byte":                 "signed char",
	"double":               "double",
	"Double":               "double",
	"float":                "float",
	"Float":                "float",
	"decimal":              "long double",
	"BigDecimal":           "long double",
	"java.math.BigDecimal": "long double",
	"integer":              "long long",
	"BigInteger":           "long long",
	"java.math.BigInteger": "long long",
}

var goTypes = map[string]string{
	"string":               "string",
	"normalizedString":     "string",
	"token":                "string",
	"anyURI":               "string",
	"String":               "string",
	"java.lang.String":     "string",
	"boolean":              "bool",
	"Boolean":              "bool",
	"int":                  "int",
	"Integer":              "int",
	"long":                 "int64",
	"Long":                 "int64",
	"short":                "int16",
	"byte":                 "int8",
	"double":               "float64",
	"Double":               "float64",
	"float":                "float32",
	"Float":                "float32",
	"decimal":              "float64",
	"BigDecimal":           "float64",
	"java.math.BigDecimal": "float64",
	"integer":              "int64",
	"BigInteger":           "int64",
	"java.math.BigInteger": "int64",
}

func mapType(table map[string]string, typ string) string {
	if t, ok := table[typ]; ok {
		return t
	}
	return typ
}

func isStringType(typ string) bool {
	switch typ {
	case "String", "std::string", "string":
		return true
	}
	return false
}

func isBigType(typ string) bool {
	return typ == "java.math.BigDecimal" || typ == "java.math.BigInteger"
}

func isNumericType(typ string) bool {
	switch typ {
	case "int", "long", "short", "byte", "double", "float",
		"long long", "signed char", "long double",
		"int8", "int16", "int64", "float32", "float64":
		return true
	}
	return isBigType(typ)
}

// exported upper-cases the first rune of name.
func exported(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// quote returns s as a double-quoted literal valid in Java and C++.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
