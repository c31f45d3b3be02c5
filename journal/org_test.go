package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBarOrg(t *testing.T) {
	t.Parallel()

	rec := &BarRecord{
		TS:   "2024-06-03 09:30:00",
		Bull: []string{"above EMA", "DB(x)"},
		Bear: []string{},
		TR:   []string{},
		Bias: []string{"Bullish"},
	}

	out := FormatBarOrg(RTH, rec)

	assert.True(t, strings.HasPrefix(out, "** Bar RTH\n"))
	assert.Contains(t, out, ":PROPERTIES:\n:BAR: RTH\n:TS: 2024-06-03 09:30:00\n:END:\n")
	assert.Contains(t, out, "*** Bull\n- above EMA\n- DB(x)\n")
	assert.Contains(t, out, "*** Bias\n- Bullish\n")
	assert.NotContains(t, out, "*** Bear")
	assert.NotContains(t, out, "*** TR")
}

func TestFormatSessionOrg(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, 0)
	assert.NoError(t, s.AddEntry("5", Bear, "below EMA"))
	assert.NoError(t, s.AddEntry(RTH, Bull, "above EMA"))

	out := FormatSessionOrg(s.Snapshot())

	// Session order, not insertion order.
	rth := strings.Index(out, "** Bar RTH")
	five := strings.Index(out, "** Bar 5")
	assert.True(t, rth >= 0 && five > rth)

	// Empty bars are skipped entirely.
	assert.NotContains(t, out, "** Bar ETH")
	assert.NotContains(t, out, "** Bar 81")
}

func TestFormatSessionOrgEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", FormatSessionOrg(NewSession()))
}
