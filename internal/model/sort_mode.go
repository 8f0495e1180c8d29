package model

import (
	"fmt"
	"strings"
)

// SortMode selects the comparison key and direction for the transaction list.
type SortMode int

// Sort modes, in the order the picker shows them.
const (
	SortNone SortMode = iota
	SortNameAsc
	SortNameDesc
	SortDateDesc
	SortDateAsc
)

var sortModeNames = map[SortMode]string{
	SortNone:     "none",
	SortNameAsc:  "name-asc",
	SortNameDesc: "name-desc",
	SortDateDesc: "date-desc",
	SortDateAsc:  "date-asc",
}

var sortModeLabels = map[SortMode]string{
	SortNone:     "URUTKAN",
	SortNameAsc:  "Nama A-Z",
	SortNameDesc: "Nama Z-A",
	SortDateDesc: "Tanggal Terbaru",
	SortDateAsc:  "Tanggal Terlama",
}

// SortModes returns every sort mode in picker order.
func SortModes() []SortMode {
	return []SortMode{SortNone, SortNameAsc, SortNameDesc, SortDateDesc, SortDateAsc}
}

// String returns the identifier used by flags and configuration.
func (m SortMode) String() string {
	if name, ok := sortModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("SortMode(%d)", int(m))
}

// Label returns the user-facing label.
func (m SortMode) Label() string {
	if label, ok := sortModeLabels[m]; ok {
		return label
	}
	return m.String()
}

// IsValid reports whether m is a known sort mode.
func (m SortMode) IsValid() bool {
	_, ok := sortModeNames[m]
	return ok
}

// ParseSortMode accepts either the identifier or the label of a sort mode.
// An empty string selects SortNone.
func ParseSortMode(s string) (SortMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortNone, nil
	}

	for _, mode := range SortModes() {
		if strings.EqualFold(s, mode.String()) || strings.EqualFold(s, mode.Label()) {
			return mode, nil
		}
	}

	return SortNone, fmt.Errorf("unknown sort mode %q (valid: none, name-asc, name-desc, date-desc, date-asc)", s)
}
