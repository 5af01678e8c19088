package ucd

import "io"

type PropertyValueAliases struct {
	// GeneralCategory maps every normalized gc value alias, long or short, to
	// the normalized abbreviation.
	GeneralCategory             map[string]string
	GeneralCategoryDefaultRange *CodePointRange
	GeneralCategoryDefaultValue string
}

// ParsePropertyValueAliases parses PropertyValueAliases.txt. The first field
// of each record is the property abbreviation, the second the abbreviated
// value alias, the third the long alias, and any further fields additional
// aliases. The `# @missing:` line for General_Category supplies the default
// value and the range it applies to.
//
// https://www.unicode.org/reports/tr44/#Property_Value_Aliases
// https://www.unicode.org/reports/tr44/#Missing_Conventions
func ParsePropertyValueAliases(r io.Reader) (*PropertyValueAliases, error) {
	gcAliases := map[string]string{}
	var defaultGCCPRange *CodePointRange
	var defaultGCVal string
	p := newParser(r)
	for p.parse() {
		if len(p.fields) > 2 && p.fields[0].symbol() == "gc" {
			abb := p.fields[1].normalizedSymbol()
			gcAliases[abb] = abb
			for _, f := range p.fields[2:] {
				gcAliases[f.normalizedSymbol()] = abb
			}
		}
		if len(p.defaultFields) > 2 && p.defaultFields[1].symbol() == "General_Category" {
			var err error
			defaultGCCPRange, err = p.defaultFields[0].codePointRange()
			if err != nil {
				return nil, err
			}
			defaultGCVal = p.defaultFields[2].normalizedSymbol()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return &PropertyValueAliases{
		GeneralCategory:             gcAliases,
		GeneralCategoryDefaultRange: defaultGCCPRange,
		GeneralCategoryDefaultValue: defaultGCVal,
	}, nil
}

func (a *PropertyValueAliases) gcAbb(gc string) string {
	if abb, ok := a.GeneralCategory[gc]; ok {
		return abb
	}
	return gc
}
