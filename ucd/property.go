package ucd

// https://www.unicode.org/reports/tr44/#GC_Values_Table
var compositeGeneralCategories = map[string][]string{
	// Cased_Letter
	"lc": {"lu", "ll", "lt"},
	// Letter
	"l": {"lu", "ll", "lt", "lm", "lo"},
	// Mark
	"m": {"mn", "mc", "me"},
	// Number
	"n": {"nd", "nl", "no"},
	// Punctuation
	"p": {"pc", "pd", "ps", "pe", "pi", "pf", "po"},
	// Symbol
	"s": {"sm", "sc", "sk", "so"},
	// Separator
	"z": {"zs", "zl", "zp"},
	// Other
	"c": {"cc", "cf", "cs", "co", "cn"},
}

// https://www.unicode.org/Public/13.0.0/ucd/PropertyAliases.txt
var propertyNameAbbs = map[string]string{
	"generalcategory": "gc",
	"gc":              "gc",
}

// https://www.unicode.org/reports/tr44/#Binary_Values_Table
var binaryValues = map[string]bool{
	"yes":   true,
	"y":     true,
	"true":  true,
	"t":     true,
	"no":    false,
	"n":     false,
	"false": false,
	"f":     false,
}
