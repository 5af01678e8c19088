package ucd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// PropertySet resolves property names and values against a parsed UCD
// snapshot. It covers the General_Category values of UnicodeData.txt,
// composite gc groupings like L and P, and every binary property declared in
// PropList.txt and DerivedCoreProperties.txt.
type PropertySet struct {
	unicodeData    *UnicodeData
	propValAliases *PropertyValueAliases
	propList       *BinaryProperties
	derivedCore    *BinaryProperties
}

// LoadDir parses the UCD data files the property resolver needs from a UCD
// directory snapshot.
func LoadDir(dir string) (*PropertySet, error) {
	set := &PropertySet{}
	err := parseFile(filepath.Join(dir, "PropertyValueAliases.txt"), func(f *os.File) error {
		var err error
		set.propValAliases, err = ParsePropertyValueAliases(f)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = parseFile(filepath.Join(dir, "UnicodeData.txt"), func(f *os.File) error {
		var err error
		set.unicodeData, err = ParseUnicodeData(f, set.propValAliases)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = parseFile(filepath.Join(dir, "PropList.txt"), func(f *os.File) error {
		var err error
		set.propList, err = ParseBinaryProperties(f)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = parseFile(filepath.Join(dir, "DerivedCoreProperties.txt"), func(f *os.File) error {
		var err error
		set.derivedCore, err = ParseBinaryProperties(f)
		return err
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func parseFile(path string, parse func(f *os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	err = parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse %v: %w", filepath.Base(path), err)
	}
	return nil
}

// FindCodePointRanges returns the codepoint ranges of a property. Property
// names and values match loosely per UAX #44. For General_Category pass the
// value through propVal; for binary properties propVal may be empty or any
// affirmative alias (yes, y, true, t).
//
// The result is unsorted across source records and may contain adjacent
// ranges; the trie compiler coalesces defensively, so no normalization
// happens here.
func (s *PropertySet) FindCodePointRanges(propName, propVal string) ([]*CodePointRange, error) {
	if propName == "" {
		propName = "gc"
	}
	name := NormalizeSymbolicValue(propName)
	if abb, ok := propertyNameAbbs[name]; ok {
		name = abb
	}
	if name == "gc" {
		return s.generalCategoryRanges(propVal)
	}
	if propVal != "" {
		yes, ok := binaryValues[NormalizeSymbolicValue(propVal)]
		if !ok {
			return nil, fmt.Errorf("unsupported character property value: %v", propVal)
		}
		if !yes {
			return nil, fmt.Errorf("binary property %v supports only the affirmative form", propName)
		}
	}
	if rs, ok := s.derivedCore.Properties[name]; ok {
		return rs, nil
	}
	if rs, ok := s.propList.Properties[name]; ok {
		return rs, nil
	}
	return nil, fmt.Errorf("unsupported character property name: %v", propName)
}

func (s *PropertySet) generalCategoryRanges(propVal string) ([]*CodePointRange, error) {
	val := s.propValAliases.gcAbb(NormalizeSymbolicValue(propVal))
	if vals, ok := compositeGeneralCategories[val]; ok {
		// A member category may have no codepoints at all; that just
		// contributes nothing to the union.
		var ranges []*CodePointRange
		for _, v := range vals {
			ranges = append(ranges, s.unicodeData.GeneralCategory[v]...)
		}
		return ranges, nil
	}
	rs, ok := s.unicodeData.GeneralCategory[val]
	if !ok {
		return nil, fmt.Errorf("unsupported General_Category value: %v", propVal)
	}
	return rs, nil
}

// PropertyNames returns the sorted normalized names of every property the
// snapshot can resolve, General_Category included.
func (s *PropertySet) PropertyNames() []string {
	names := map[string]struct{}{
		"gc": {},
	}
	for name := range s.propList.Properties {
		names[name] = struct{}{}
	}
	for name := range s.derivedCore.Properties {
		names[name] = struct{}{}
	}
	var sorted []string
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	return sorted
}
