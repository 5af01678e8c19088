package ucd

import (
	"fmt"
	"io"
	"strings"
)

type UnicodeData struct {
	// GeneralCategory maps each General_Category abbreviation to its sorted
	// codepoint ranges, adjacent records merged.
	GeneralCategory map[string][]*CodePointRange

	propValAliases *PropertyValueAliases
}

// ParseUnicodeData parses UnicodeData.txt. Records named `<..., First>` and
// `<..., Last>` form a single range pair and are folded into one range.
// Codepoints absent from the file take the General_Category default declared
// by PropertyValueAliases.txt.
func ParseUnicodeData(r io.Reader, propValAliases *PropertyValueAliases) (*UnicodeData, error) {
	unicodeData := &UnicodeData{
		GeneralCategory: map[string][]*CodePointRange{},
		propValAliases:  propValAliases,
	}

	lastCPTo := rune(-1)
	var pairFirst *CodePointRange
	var pairGC string
	p := newParser(r)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		cp, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, err
		}
		name := p.fields[1].symbol()
		gc := p.fields[2].normalizedSymbol()
		if strings.HasSuffix(name, ", First>") {
			pairFirst = cp
			pairGC = gc
			continue
		}
		if strings.HasSuffix(name, ", Last>") {
			if pairFirst == nil {
				return nil, fmt.Errorf("ucd: %#v record has no preceding First record", name)
			}
			cp = &CodePointRange{
				From: pairFirst.From,
				To:   cp.To,
			}
			gc = pairGC
			pairFirst = nil
		}
		if cp.From-lastCPTo > 1 {
			unicodeData.addGC(propValAliases.GeneralCategoryDefaultValue, &CodePointRange{
				From: lastCPTo + 1,
				To:   cp.From - 1,
			})
		}
		lastCPTo = cp.To
		unicodeData.addGC(gc, cp)
	}
	if p.err != nil {
		return nil, p.err
	}
	if pairFirst != nil {
		return nil, fmt.Errorf("ucd: First record %v has no matching Last record", pairFirst)
	}
	if lastCPTo < propValAliases.GeneralCategoryDefaultRange.To {
		unicodeData.addGC(propValAliases.GeneralCategoryDefaultValue, &CodePointRange{
			From: lastCPTo + 1,
			To:   propValAliases.GeneralCategoryDefaultRange.To,
		})
	}

	return unicodeData, nil
}

func (u *UnicodeData) addGC(gc string, cp *CodePointRange) {
	// https://www.unicode.org/reports/tr44/#Empty_Fields
	// An empty field means the property takes its default value for that
	// codepoint.
	if gc == "" {
		if cp.From < u.propValAliases.GeneralCategoryDefaultRange.From || cp.To > u.propValAliases.GeneralCategoryDefaultRange.To {
			return
		}
		gc = u.propValAliases.GeneralCategoryDefaultValue
	}

	abb := u.propValAliases.gcAbb(gc)
	cps, ok := u.GeneralCategory[abb]
	if ok {
		c := cps[len(cps)-1]
		if cp.From-c.To == 1 {
			c.To = cp.To
		} else {
			u.GeneralCategory[abb] = append(cps, cp)
		}
	} else {
		u.GeneralCategory[abb] = []*CodePointRange{cp}
	}
}
