package hooks

import (
	"fmt"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// contextHook adds the file:line of the code that logged an entry
type contextHook struct {
}

func NewContextHook() contextHook {
	return contextHook{}
}

func (hook contextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook contextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !strings.Contains(f.Function, "sirupsen/logrus") && !strings.HasSuffix(f.File, "context_hook.go") {
			entry.Data["file:line"] = fmt.Sprintf("%s:%d", path.Base(f.File), f.Line)
			return nil
		}
		if !more {
			return nil
		}
	}
}
