package resolve

import (
	"fmt"
	"sync"
)

type fakeEntry struct {
	name string
	dir  bool
}

func (e fakeEntry) Name() string { return e.name }
func (e fakeEntry) IsDir() bool  { return e.dir }

func files(names ...string) []Entry {
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		entries = append(entries, fakeEntry{name: n})
	}
	return entries
}

type fakeLister struct {
	entries []Entry
	err     error
	calls   int
}

func (l *fakeLister) List(dir string) ([]Entry, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.entries, nil
}

type extractCall struct {
	archive string
	dest    string
}

type fakeExtractor struct {
	err   error
	calls []extractCall
}

func (e *fakeExtractor) Extract(archivePath, destDir string) error {
	e.calls = append(e.calls, extractCall{archive: archivePath, dest: destDir})
	return e.err
}

type fakeInspector map[string]bool

func (f fakeInspector) IsDir(path string) bool { return f[path] }

type logLine struct {
	level string
	msg   string
}

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (r *recordingLogger) record(level, msg string, kv []interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, logLine{level: level, msg: msg + fmt.Sprint(kv...)})
}

func (r *recordingLogger) Debug(msg string, kv ...interface{}) { r.record("debug", msg, kv) }
func (r *recordingLogger) Info(msg string, kv ...interface{})  { r.record("info", msg, kv) }
func (r *recordingLogger) Warn(msg string, kv ...interface{})  { r.record("warn", msg, kv) }
func (r *recordingLogger) Error(msg string, kv ...interface{}) { r.record("error", msg, kv) }

func (r *recordingLogger) count(level string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.lines {
		if l.level == level {
			n++
		}
	}
	return n
}
