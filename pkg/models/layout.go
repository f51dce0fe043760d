package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mode selects one of the paragraph layout strategies.
type Mode int

const (
	ModeUnbreakable Mode = iota
	ModePreWrapped
	ModeUnwrapped
	ModeMeasuredWidth
	ModeColorized
)

// ModeOrder is the fixed order in which requested modes run.
var ModeOrder = []Mode{ModeColorized, ModeMeasuredWidth, ModeUnwrapped, ModePreWrapped, ModeUnbreakable}

var modeNames = map[Mode]string{
	ModeUnbreakable:   "unbreakable",
	ModePreWrapped:    "pre-wrapped",
	ModeUnwrapped:     "unwrapped",
	ModeMeasuredWidth: "measured-width",
	ModeColorized:     "colorized",
}

func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return fmt.Sprintf("mode %d (%s)", int(m), name)
	}
	return fmt.Sprintf("mode %d (unknown)", int(m))
}

// ModeSet is an unordered set of requested modes.
type ModeSet map[Mode]struct{}

func NewModeSet(modes ...Mode) ModeSet {
	set := make(ModeSet, len(modes))
	for _, m := range modes {
		set[m] = struct{}{}
	}
	return set
}

func (s ModeSet) Has(m Mode) bool {
	_, ok := s[m]
	return ok
}

// Ordered returns the members of the set in execution order.
func (s ModeSet) Ordered() []Mode {
	var out []Mode
	for _, m := range ModeOrder {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// ParseModes parses a comma separated list such as "4,3".
func ParseModes(list string) ([]int, error) {
	var modes []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid mode %q: %w", field, err)
		}
		if !Mode(n).Valid() {
			return nil, fmt.Errorf("mode %d out of range 0-4", n)
		}
		modes = append(modes, n)
	}
	return modes, nil
}

type RGB struct {
	R int `yaml:"r" validate:"min=0,max=255"`
	G int `yaml:"g" validate:"min=0,max=255"`
	B int `yaml:"b" validate:"min=0,max=255"`
}

type FontSpec struct {
	Family string  `yaml:"family" validate:"required"`
	Style  string  `yaml:"style" validate:"omitempty,oneof=B I U BI IB"`
	Size   float64 `yaml:"size" validate:"gt=0"`
}

// RunResult describes one finished experiment run.
type RunResult struct {
	OutputPath   string
	PageCount    int
	CopiedTo     string
	PreviewPages []PreviewPage
	StartTime    time.Time
	EndTime      time.Time
}

type PreviewPage struct {
	PageNum   int
	ImagePath string
	Hash      string
}

type PageDimensions struct {
	Width  float64
	Height float64
}
