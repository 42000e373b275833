package telegraf

import (
	"sort"
	"strconv"
	"strings"
)

// escapeTag escapes literal spaces in a tag name or value so the daemon does
// not read them as the end of the tag segment. Only tags get this treatment;
// field names and values pass through their own rendering untouched.
func escapeTag(s string) string {
	return strings.ReplaceAll(s, " ", `\ `)
}

// formatPairs sorts rendered name=value pairs and joins them with commas.
// The sort key is the whole rendered pair, not the name alone; producing
// byte-identical output depends on this exact rule. An empty input renders
// to the empty string.
func formatPairs(pairs []string) string {
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// assembleLine builds one newline-terminated line from rendered segments.
// The tag segment is omitted entirely, comma included, when tags is empty.
func assembleLine(measurement, tags, fields string, timestamp uint64, hasTimestamp bool) string {
	var b strings.Builder
	b.WriteString(measurement)
	if tags != "" {
		b.WriteByte(',')
		b.WriteString(tags)
	}
	b.WriteByte(' ')
	b.WriteString(fields)
	if hasTimestamp {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(timestamp, 10))
	}
	b.WriteByte('\n')
	return b.String()
}
