// Package stacktrace condenses raw goroutine stacks into the frames that
// belong to this repository, so panic logs stay readable.
package stacktrace

import "strings"

// InternalPaths extracts the internal package frames from a raw stack trace
// as "internal/<pkg>/<file>.go:<line>" entries. It returns nil when the stack
// never passes through internal code.
func InternalPaths(stack []byte) []string {
	var paths []string

	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, "/internal/")
		if idx == -1 || !strings.Contains(line, ".go:") {
			continue
		}

		frame := line[idx+1:]
		if cut := strings.IndexByte(frame, ' '); cut != -1 {
			frame = frame[:cut]
		}
		paths = append(paths, frame)
	}

	return paths
}
