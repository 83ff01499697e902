package core

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// Caller returns a "file:line" tag for the call site skip frames up
// the stack, or an empty string when the stack cannot be resolved.
func Caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
