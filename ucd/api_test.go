package ucd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestPropertySet(t *testing.T) *PropertySet {
	t.Helper()
	aliases := parseAliasesSample(t)
	unicodeData, err := ParseUnicodeData(strings.NewReader(`0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0042;LATIN CAPITAL LETTER B;Lu;0;L;;;;;N;;;;0062;
3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
4DB5;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;
`), aliases)
	if err != nil {
		t.Fatalf("unexpected error occurred: %v", err)
	}
	propList, err := ParseBinaryProperties(strings.NewReader(`0009..000D    ; White_Space # Cc   [5] <control-0009>..<control-000D>
0020          ; White_Space # Zs       SPACE
`))
	if err != nil {
		t.Fatalf("unexpected error occurred: %v", err)
	}
	derivedCore, err := ParseBinaryProperties(strings.NewReader(`0041..005A    ; Alphabetic # L&  [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z
00AA          ; Alphabetic # Lo       FEMININE ORDINAL INDICATOR
`))
	if err != nil {
		t.Fatalf("unexpected error occurred: %v", err)
	}
	return &PropertySet{
		unicodeData:    unicodeData,
		propValAliases: aliases,
		propList:       propList,
		derivedCore:    derivedCore,
	}
}

func TestFindCodePointRanges(t *testing.T) {
	props := newTestPropertySet(t)
	tests := []struct {
		name     string
		propName string
		propVal  string
		want     []*CodePointRange
		invalid  bool
	}{
		{
			name:     "gc single value",
			propName: "General_Category",
			propVal:  "Lu",
			want: []*CodePointRange{
				{From: 0x0041, To: 0x0042},
			},
		},
		{
			name:     "gc long alias",
			propName: "gc",
			propVal:  "Uppercase_Letter",
			want: []*CodePointRange{
				{From: 0x0041, To: 0x0042},
			},
		},
		{
			name:     "gc composite value",
			propName: "gc",
			propVal:  "L",
			want: []*CodePointRange{
				{From: 0x0041, To: 0x0042},
				{From: 0x3400, To: 0x4DB5},
			},
		},
		{
			name:     "gc is the default property",
			propName: "",
			propVal:  "Lu",
			want: []*CodePointRange{
				{From: 0x0041, To: 0x0042},
			},
		},
		{
			name:     "binary property",
			propName: "White_Space",
			want: []*CodePointRange{
				{From: 0x0009, To: 0x000D},
				{From: 0x0020, To: 0x0020},
			},
		},
		{
			name:     "binary property with affirmative value",
			propName: "Alphabetic",
			propVal:  "yes",
			want: []*CodePointRange{
				{From: 0x0041, To: 0x005A},
				{From: 0x00AA, To: 0x00AA},
			},
		},
		{
			name:     "loose matching",
			propName: "white-space",
			want: []*CodePointRange{
				{From: 0x0009, To: 0x000D},
				{From: 0x0020, To: 0x0020},
			},
		},
		{
			name:     "negated binary property",
			propName: "White_Space",
			propVal:  "no",
			invalid:  true,
		},
		{
			name:     "unknown property",
			propName: "Unknown_Property",
			invalid:  true,
		},
		{
			name:     "unknown gc value",
			propName: "gc",
			propVal:  "Xx",
			invalid:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := props.FindCodePointRanges(tt.propName, tt.propVal)
			if tt.invalid {
				if err == nil {
					t.Fatalf("expected error didn't occur")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error occurred: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ranges mismatch (-want +got):\n%v", diff)
			}
		})
	}
}

func TestPropertyNames(t *testing.T) {
	props := newTestPropertySet(t)
	want := []string{"alphabetic", "gc", "whitespace"}
	if diff := cmp.Diff(want, props.PropertyNames()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%v", diff)
	}
}
