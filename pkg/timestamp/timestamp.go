// Package timestamp renders wall-clock times as fixed-layout UTC strings
// for logs, audit records, and API payloads that want a stable, sortable
// 20-character form.
package timestamp

import "time"

// Layout is the output format: YYYY-MM-DDTHH:MM:SSZ. The trailing Z is a
// literal; Format always converts to UTC first, so the marker is truthful.
const Layout = "2006-01-02T15:04:05Z"

// NowUTC returns the current time formatted with Layout.
func NowUTC() string {
	return Format(time.Now())
}

// Format renders t in UTC using Layout. The result is always exactly 20
// characters.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}
