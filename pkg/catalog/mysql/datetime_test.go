package mysql

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
)

// TestEpochConstants re-derives the bridge constants from the Go time
// package so a typo in either cannot survive.
func TestEpochConstants(t *testing.T) {
	// time.Duration caps at about 292 years, so span arithmetic this
	// wide has to go through unix seconds.
	minDate := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	epoch := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

	daysToEpoch := int((epoch.Unix() - minDate.Unix()) / 86400)
	assert.Equal(t, 719162, daysToEpoch)

	// TO_DAYS counts from the pseudo year 0, which contributes 366
	// days before 0001-01-01.
	assert.Equal(t, 719528, daysToEpoch+DayNumberOfMinDate)
	assert.Equal(t, int64(719528)*86400, int64(SecondsToUnixEpoch))
}

// TestDayNumberReference checks a published TO_DAYS value against the
// constant-based arithmetic the SQL bodies use.
func TestDayNumberReference(t *testing.T) {
	// TO_DAYS('2007-10-07') = 733321 per the MySQL reference manual.
	minDate := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	d := time.Date(2007, time.October, 7, 0, 0, 0, 0, time.UTC)
	got := int((d.Unix()-minDate.Unix())/86400) + DayNumberOfMinDate
	assert.Equal(t, 733321, got)
}

// TestDayNumberRoundTrip mirrors the from_days/to_days arithmetic in
// Go and checks it is inverse around the floor and far above it.
func TestDayNumberRoundTrip(t *testing.T) {
	minDate := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

	fromDays := func(n int) time.Time {
		return minDate.AddDate(0, 0, n-DayNumberOfMinDate)
	}
	toDays := func(d time.Time) int {
		return int((d.Unix()-minDate.Unix())/86400) + DayNumberOfMinDate
	}

	for _, n := range []int{366, 367, 733321, 3652058} {
		assert.Equal(t, n, toDays(fromDays(n)), "day number %d", n)
	}
}

func TestTranslateFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"%Y-%m-%d", "%Y-%m-%d"},
		{"%M %d, %Y", "%B %d, %Y"},
		{"%W the %d", "%A the %d"},
		{"%H:%i:%s", "%H:%M:%S"},
		{"%h:%i %p", "%I:%M %p"},
		{"%r", "%I:%M:%S %p"},
		{"%T", "%H:%M:%S"},
		// %i must not be corrupted by the %M rewrite that precedes it.
		{"%M %i", "%B %M"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateFormat(tt.in))
		})
	}
}

// TestReplaceChainMatchesTranslateFormat evaluates the nested REPLACE
// expression the SQL bodies embed, confirming it computes the same
// rewrite as TranslateFormat.
func TestReplaceChainMatchesTranslateFormat(t *testing.T) {
	chain := replaceChain("f")

	eval := func(format string) string {
		// Innermost REPLACE runs first, so apply the replacements in
		// declaration order, exactly as the nesting does.
		for _, r := range DirectiveReplacements {
			format = strings.ReplaceAll(format, r[0], r[1])
		}
		return format
	}

	for _, format := range []string{"%Y-%m-%d %H:%i:%s", "%W, %M %d", "%r"} {
		assert.Equal(t, TranslateFormat(format), eval(format), "chain %s", chain)
	}

	// The chain nests one REPLACE per replacement pair.
	assert.Equal(t, len(DirectiveReplacements), strings.Count(chain, "REPLACE("))
}

func TestUnsupportedDirectivePattern(t *testing.T) {
	re := regexp.MustCompile(UnsupportedDirectivePattern)

	for _, d := range UnsupportedDirectives {
		assert.True(t, re.MatchString("%"+d), "directive %%%s should be rejected", d)
	}
	for _, ok := range []string{"%Y-%m-%d", "%H:%i:%s", "%M %W %p %r %T", "100%% done"} {
		assert.False(t, re.MatchString(ok), "format %q should be accepted", ok)
	}
}

func TestDateFormatBodyEmbedsGuard(t *testing.T) {
	e, ok := catalog.Lookup("date_format")
	require.True(t, ok)
	assert.Contains(t, e.Body, UnsupportedDirectivePattern)
	assert.Contains(t, e.Body, "FORMAT_TIMESTAMP")

	s, ok := catalog.Lookup("str_to_date")
	require.True(t, ok)
	assert.Contains(t, s.Body, UnsupportedDirectivePattern)
	assert.Contains(t, s.Body, "SAFE.PARSE_TIMESTAMP")
	assert.Equal(t, catalog.PolicyNull, s.ErrorPolicy)
}

func TestFromDaysGuardsPreGregorianInput(t *testing.T) {
	e, ok := catalog.Lookup("from_days")
	require.True(t, ok)
	assert.Contains(t, e.Body, fmt.Sprintf("n < %d", DayNumberOfMinDate))
	assert.Contains(t, e.Body, "ERROR(")
	assert.Equal(t, catalog.PolicyError, e.ErrorPolicy)
}

func TestWeekdayOffset(t *testing.T) {
	// MySQL WEEKDAY is 0 for Monday. DAYOFWEEK in GoogleSQL is 1 for
	// Sunday, so the body shifts by 5 mod 7.
	e, ok := catalog.Lookup("weekday")
	require.True(t, ok)
	assert.Contains(t, e.Body, "+ 5, 7")

	// Spot-check the arithmetic for a known Monday.
	monday := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())
	dayofweek := int(monday.Weekday()) + 1 // GoogleSQL numbering
	assert.Equal(t, 0, (dayofweek+5)%7)
}
