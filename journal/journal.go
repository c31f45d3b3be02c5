// journal/journal.go
package journal

import (
	"strconv"
	"strings"
	"time"
)

// Category names one of the four observation lists kept per bar.
type Category string

const (
	Bull Category = "bull"
	Bear Category = "bear"
	TR   Category = "tr"
	Bias Category = "bias"
)

// Categories is the fixed display order of the four categories.
var Categories = [4]Category{Bull, Bear, TR, Bias}

// BarKey identifies one journal slot: "RTH", "ETH" or "1".."81".
type BarKey string

const (
	RTH BarKey = "RTH"
	ETH BarKey = "ETH"

	MinBarNum = 1
	MaxBarNum = 81
)

// BarOrder is the fixed session row order: the two sentinel bars followed by
// the numbered bars 1..81. Never modified at runtime.
var BarOrder = buildBarOrder()

func buildBarOrder() []BarKey {
	order := make([]BarKey, 0, 2+MaxBarNum)
	order = append(order, RTH, ETH)
	for n := MinBarNum; n <= MaxBarNum; n++ {
		order = append(order, BarKey(strconv.Itoa(n)))
	}
	return order
}

// ParseBarKey normalizes arbitrary input into a valid key. Sentinel labels
// match case-insensitively, numeric strings clamp into [1,81], and anything
// unrecognized falls back to RTH.
func ParseBarKey(s string) BarKey {
	up := strings.ToUpper(strings.TrimSpace(s))
	if up == string(RTH) || up == string(ETH) {
		return BarKey(up)
	}
	if n, err := strconv.Atoi(up); err == nil {
		if n < MinBarNum {
			n = MinBarNum
		}
		if n > MaxBarNum {
			n = MaxBarNum
		}
		return BarKey(strconv.Itoa(n))
	}
	return RTH
}

const tsLayout = "2006-01-02 15:04:05"

// BarRecord holds the observations journaled against one bar. Each category
// list keeps distinct entries in insertion order.
type BarRecord struct {
	TS   string   `json:"ts"`
	Bull []string `json:"bull"`
	Bear []string `json:"bear"`
	TR   []string `json:"tr"`
	Bias []string `json:"bias"`
}

func newBarRecord(now time.Time) *BarRecord {
	return &BarRecord{
		TS:   now.Format(tsLayout),
		Bull: []string{},
		Bear: []string{},
		TR:   []string{},
		Bias: []string{},
	}
}

// List returns the backing list for a category.
func (r *BarRecord) List(c Category) []string {
	switch c {
	case Bull:
		return r.Bull
	case Bear:
		return r.Bear
	case TR:
		return r.TR
	case Bias:
		return r.Bias
	}
	return nil
}

func (r *BarRecord) setList(c Category, list []string) {
	switch c {
	case Bull:
		r.Bull = list
	case Bear:
		r.Bear = list
	case TR:
		r.TR = list
	case Bias:
		r.Bias = list
	}
}

// Empty reports whether the record holds no observations in any category.
func (r *BarRecord) Empty() bool {
	return len(r.Bull) == 0 && len(r.Bear) == 0 && len(r.TR) == 0 && len(r.Bias) == 0
}

// Clone returns a deep copy of r.
func (r *BarRecord) Clone() *BarRecord {
	out := &BarRecord{TS: r.TS}
	out.Bull = append([]string{}, r.Bull...)
	out.Bear = append([]string{}, r.Bear...)
	out.TR = append([]string{}, r.TR...)
	out.Bias = append([]string{}, r.Bias...)
	return out
}

// Session maps every bar key to its record. After initialization all 83 keys
// are present; absent keys are lazily recreated on first access.
type Session map[BarKey]*BarRecord

// NewSession returns a session pre-populated with an empty record for every
// key in BarOrder.
func NewSession() Session {
	s := make(Session, len(BarOrder))
	now := time.Now()
	for _, key := range BarOrder {
		s[key] = newBarRecord(now)
	}
	return s
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	out := make(Session, len(s))
	for key, rec := range s {
		out[key] = rec.Clone()
	}
	return out
}
