package amoskeag

import (
	"strings"
	"time"
)

// Date built-ins (§4.5). date_now reads the host-provided
// metadata.execution_time slot rather than querying a wall clock
// itself, keeping evaluation fully deterministic (§5's no-I/O rule):
// the same Program evaluated twice against the same data always
// produces the same date_now() result.
func init() {
	register("date_now", []int{0}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return env.Resolve("metadata", []string{"execution_time"}), nil
	})
	register("date_format", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		n, err := wantNumber(a[0], "date_format", sp)
		if err != nil {
			return Value{}, err
		}
		layout, err := wantString(a[1], "date_format", sp)
		if err != nil {
			return Value{}, err
		}
		t := time.Unix(int64(n), 0).UTC()
		return String(formatDate(t, layout)), nil
	})
}

// dateTokenOrder lists the recognized format tokens longest-first so MMM
// is tried before MM; dateTokenValue maps each token to the function
// that renders that field of a time.
var dateTokenOrder = []string{"YYYY", "MMM", "MM", "DD", "HH", "mm", "ss"}

var dateTokenValue = map[string]func(t time.Time) string{
	"YYYY": func(t time.Time) string { return t.Format("2006") },
	"MMM":  func(t time.Time) string { return t.Format("Jan") },
	"MM":   func(t time.Time) string { return t.Format("01") },
	"DD":   func(t time.Time) string { return t.Format("02") },
	"HH":   func(t time.Time) string { return t.Format("15") },
	"mm":   func(t time.Time) string { return t.Format("04") },
	"ss":   func(t time.Time) string { return t.Format("05") },
}

// formatDate replaces each recognized token in fmtStr with t's
// corresponding field, leaving any other character (separators like
// '-', '/', ':', ' ') untouched.
func formatDate(t time.Time, fmtStr string) string {
	var b strings.Builder
	for i := 0; i < len(fmtStr); {
		matched := false
		for _, tok := range dateTokenOrder {
			if strings.HasPrefix(fmtStr[i:], tok) {
				b.WriteString(dateTokenValue[tok](t))
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(fmtStr[i])
			i++
		}
	}
	return b.String()
}
