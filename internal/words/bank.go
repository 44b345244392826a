// Package words holds the static word banks the games draw from.
//
// Each bank is an embedded YAML list of words paired with the spelling that
// completes them ("j" or "ly"). Banks are immutable once loaded.
package words

import (
	"embed"
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lists/*.yaml
var lists embed.FS

// Choice is one of the two candidate spellings.
type Choice uint8

const (
	ChoiceNone Choice = iota
	ChoiceJ
	ChoiceLY
)

// String returns the lowercase spelling ("j" or "ly").
func (c Choice) String() string {
	switch c {
	case ChoiceJ:
		return "j"
	case ChoiceLY:
		return "ly"
	default:
		return ""
	}
}

// Label returns the uppercase form shown on shots and in the HUD.
func (c Choice) Label() string {
	return strings.ToUpper(c.String())
}

// ParseChoice converts "j"/"ly" (any case) to a Choice.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "j":
		return ChoiceJ, nil
	case "ly":
		return ChoiceLY, nil
	default:
		return ChoiceNone, fmt.Errorf("words: unknown choice %q", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Choice) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseChoice(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Entry is a word and its correct spelling.
type Entry struct {
	Word   string `yaml:"word"`
	Choice Choice `yaml:"choice"`
}

// Bank is an immutable list of entries plus the placeholder glyph used to mask them.
type Bank struct {
	name        string
	placeholder string
	entries     []Entry
}

// file is the on-disk YAML layout of a bank.
type file struct {
	Placeholder string  `yaml:"placeholder"`
	Words       []Entry `yaml:"words"`
}

// DefaultPlaceholder is used when a list does not set its own.
const DefaultPlaceholder = "⚡"

// New builds a bank from entries. Every word must contain its own spelling.
func New(name, placeholder string, entries []Entry) (*Bank, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("words: bank %q is empty", name)
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	for i, e := range entries {
		if e.Choice == ChoiceNone {
			return nil, fmt.Errorf("words: bank %q entry %d (%q) has no choice", name, i, e.Word)
		}
		if !strings.Contains(e.Word, e.Choice.String()) {
			return nil, fmt.Errorf("words: bank %q entry %d: %q does not contain %q", name, i, e.Word, e.Choice)
		}
		if strings.Contains(e.Word, placeholder) {
			return nil, fmt.Errorf("words: bank %q entry %d: %q contains the placeholder", name, i, e.Word)
		}
	}

	own := make([]Entry, len(entries))
	copy(own, entries)
	return &Bank{name: name, placeholder: placeholder, entries: own}, nil
}

// Parse decodes a YAML bank.
func Parse(name string, data []byte) (*Bank, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("words: failed to parse bank %q: %w", name, err)
	}
	return New(name, f.Placeholder, f.Words)
}

// Load returns one of the embedded banks ("hu", "en").
func Load(name string) (*Bank, error) {
	data, err := lists.ReadFile("lists/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("words: unknown bank %q", name)
	}
	return Parse(name, data)
}

// Available lists the names of the embedded banks.
func Available() []string {
	dir, err := lists.ReadDir("lists")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(dir))
	for _, d := range dir {
		names = append(names, strings.TrimSuffix(d.Name(), ".yaml"))
	}
	return names
}

// Name returns the bank name.
func (b *Bank) Name() string {
	return b.name
}

// Placeholder returns the masking glyph.
func (b *Bank) Placeholder() string {
	return b.placeholder
}

// Len returns the number of entries.
func (b *Bank) Len() int {
	return len(b.entries)
}

// Entries returns a copy of the entries.
func (b *Bank) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Pick returns an entry chosen uniformly at random.
func (b *Bank) Pick(rng *rand.Rand) Entry {
	return b.entries[rng.Intn(len(b.entries))]
}

// Mask returns the word with its answer replaced by the placeholder.
func (b *Bank) Mask(e Entry) string {
	return Mask(e, b.placeholder)
}

// Mask replaces the first occurrence of the entry's correct spelling with
// placeholder. The same placeholder is used for both spellings, so the
// result does not give the answer away.
func Mask(e Entry, placeholder string) string {
	return strings.Replace(e.Word, e.Choice.String(), placeholder, 1)
}
