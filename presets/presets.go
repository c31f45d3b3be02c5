// presets/presets.go
package presets

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rustyeddy/barjournal/journal"
)

// Sets holds the four preset label lists backing the category button panels.
// Labels containing "()" are templates that prompt for a detail at add time.
//
// The application root owns a single Sets value and hands it by reference to
// whatever renders buttons; consumers register for change notification
// instead of aliasing the slices.
type Sets struct {
	Bull []string `json:"bull"`
	Bear []string `json:"bear"`
	TR   []string `json:"tr"`
	Bias []string `json:"bias"`

	subscribers []func()
}

// Defaults returns the built-in label sets.
func Defaults() *Sets {
	return &Sets{
		Bull: []string{
			"above EMA", "DB()", "Decent bull leg()", "Decent bull bar()",
			"連續bull bar()", "Bad follow after bear bar",
			"未穿 50% PB", "升穿 50% PB",
		},
		Bear: []string{
			"below EMA", "DT()", "Decent bear leg()",
			"Decent bear bar()", "連續bear bar()", "Bad follow after bull",
			"未穿 50% PB", "跌穿 50% PB",
		},
		TR: []string{
			"strongly overlap()", "moderately overlap()",
			"ii()", "ioi()", "ioii()", "iii()",
		},
		Bias: []string{
			"Bullish", "Bullish/TR", "TR", "Bearish/TR", "Bearish",
		},
	}
}

// Load reads a presets file and overrides the built-in defaults per category.
// An absent or malformed file leaves the defaults in place.
func Load(path string) *Sets {
	p := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	var file Sets
	if err := json.Unmarshal(data, &file); err != nil {
		return p
	}
	if file.Bull != nil {
		p.Bull = file.Bull
	}
	if file.Bear != nil {
		p.Bear = file.Bear
	}
	if file.TR != nil {
		p.TR = file.TR
	}
	if file.Bias != nil {
		p.Bias = file.Bias
	}
	return p
}

// Save writes the sets as indented JSON.
func (p *Sets) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal presets: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	return nil
}

// List returns the labels for a category.
func (p *Sets) List(c journal.Category) []string {
	switch c {
	case journal.Bull:
		return p.Bull
	case journal.Bear:
		return p.Bear
	case journal.TR:
		return p.TR
	case journal.Bias:
		return p.Bias
	}
	return nil
}

// Replace swaps in the lists from other and notifies subscribers, so button
// panels re-render instead of observing mutation through shared slices.
func (p *Sets) Replace(other *Sets) {
	p.Bull = append([]string{}, other.Bull...)
	p.Bear = append([]string{}, other.Bear...)
	p.TR = append([]string{}, other.TR...)
	p.Bias = append([]string{}, other.Bias...)
	for _, fn := range p.subscribers {
		fn()
	}
}

// Subscribe registers fn to run after every Replace.
func (p *Sets) Subscribe(fn func()) {
	p.subscribers = append(p.subscribers, fn)
}
