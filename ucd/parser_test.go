package ucd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const propertyValueAliasesSample = `
# Property value aliases.

gc ; C          ; Other
gc ; Cn         ; Unassigned
gc ; L          ; Letter
gc ; Lo         ; Other_Letter
gc ; Lu         ; Uppercase_Letter

# @missing: 0000..10FFFF; General_Category; Unassigned
`

func parseAliasesSample(t *testing.T) *PropertyValueAliases {
	t.Helper()
	aliases, err := ParsePropertyValueAliases(strings.NewReader(propertyValueAliasesSample))
	if err != nil {
		t.Fatalf("unexpected error occurred: %v", err)
	}
	return aliases
}

func TestParsePropertyValueAliases(t *testing.T) {
	aliases := parseAliasesSample(t)
	tests := []struct {
		alias string
		abb   string
	}{
		{alias: "lu", abb: "lu"},
		{alias: "uppercaseletter", abb: "lu"},
		{alias: "unassigned", abb: "cn"},
		{alias: "letter", abb: "l"},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			if abb := aliases.gcAbb(tt.alias); abb != tt.abb {
				t.Errorf("gcAbb(%v) = %v, want %v", tt.alias, abb, tt.abb)
			}
		})
	}
	if aliases.GeneralCategoryDefaultValue != "unassigned" {
		t.Errorf("default value is %v, want unassigned", aliases.GeneralCategoryDefaultValue)
	}
	wantRange := &CodePointRange{From: 0x0000, To: 0x10FFFF}
	if diff := cmp.Diff(wantRange, aliases.GeneralCategoryDefaultRange); diff != "" {
		t.Errorf("default range mismatch (-want +got):\n%v", diff)
	}
}

func TestParseUnicodeData(t *testing.T) {
	src := `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0042;LATIN CAPITAL LETTER B;Lu;0;L;;;;;N;;;;0062;
3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
4DB5;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;
`
	unicodeData, err := ParseUnicodeData(strings.NewReader(src), parseAliasesSample(t))
	if err != nil {
		t.Fatalf("unexpected error occurred: %v", err)
	}
	want := map[string][]*CodePointRange{
		"lu": {
			{From: 0x0041, To: 0x0042},
		},
		"lo": {
			{From: 0x3400, To: 0x4DB5},
		},
		"cn": {
			{From: 0x0000, To: 0x0040},
			{From: 0x0043, To: 0x33FF},
			{From: 0x4DB6, To: 0x10FFFF},
		},
	}
	if diff := cmp.Diff(want, unicodeData.GeneralCategory); diff != "" {
		t.Errorf("GeneralCategory mismatch (-want +got):\n%v", diff)
	}
}

func TestParseUnicodeData_FirstWithoutLast(t *testing.T) {
	src := `3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
`
	_, err := ParseUnicodeData(strings.NewReader(src), parseAliasesSample(t))
	if err == nil {
		t.Fatalf("expected error didn't occur")
	}
}

func TestParseBinaryProperties(t *testing.T) {
	src := `# PropList-13.0.0.txt

0009..000D    ; White_Space # Cc   [5] <control-0009>..<control-000D>
0020          ; White_Space # Zs       SPACE
0085          ; White_Space # Cc       <control-0085>

0030..0039    ; ASCII_Hex_Digit # Nd  [10] DIGIT ZERO..DIGIT NINE
0041..0046    ; ASCII_Hex_Digit # L&   [6] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER F
`
	props, err := ParseBinaryProperties(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error occurred: %v", err)
	}
	want := map[string][]*CodePointRange{
		"whitespace": {
			{From: 0x0009, To: 0x000D},
			{From: 0x0020, To: 0x0020},
			{From: 0x0085, To: 0x0085},
		},
		"asciihexdigit": {
			{From: 0x0030, To: 0x0039},
			{From: 0x0041, To: 0x0046},
		},
	}
	if diff := cmp.Diff(want, props.Properties); diff != "" {
		t.Errorf("Properties mismatch (-want +got):\n%v", diff)
	}
}

func TestNormalizeSymbolicValue(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "General_Category", want: "generalcategory"},
		{src: "White-Space", want: "whitespace"},
		{src: "isAlphabetic", want: "alphabetic"},
		{src: "is", want: "is"},
		{src: "Lu", want: "lu"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := NormalizeSymbolicValue(tt.src); got != tt.want {
				t.Errorf("NormalizeSymbolicValue(%v) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}
