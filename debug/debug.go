// Package debug holds helpers used when turning recovered panics into errors.
package debug

import (
	"runtime"
	"strings"
)

// Stack returns a trimmed stack trace of the calling goroutine, skipping the
// runtime and panic frames so the first line points at the faulty call.
func Stack() string {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	lines := strings.Split(string(buf[:n]), "\n")

	var sbb strings.Builder
	skip := true
	for i := 0; i < len(lines); i++ {
		l := lines[i]
		if skip {
			// the trace starts right after the panic frame
			if strings.HasPrefix(l, "panic(") {
				skip = false
				i++ // file:line of panic itself
			}
			continue
		}
		sbb.WriteString(l)
		sbb.WriteByte('\n')
	}
	if skip {
		// no panic frame, return the full trace
		return string(buf[:n])
	}
	return sbb.String()
}
