package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData collects fields and millisecond timings for one unit of work and
// emits them together on a single log line.
type LogData struct {
	mu      sync.Mutex
	timings map[string]int64
	fields  logrus.Fields
	logger  *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timings: make(map[string]int64),
		fields:  make(logrus.Fields),
		logger:  logger,
	}
}

// AddTiming starts a timer; calling the returned func records the elapsed
// time under entryName, replacing any earlier value.
func (l *LogData) AddTiming(entryName string) func() {
	return l.timer(entryName, false)
}

// AddToExistingTiming is AddTiming but sums with an earlier value.
func (l *LogData) AddToExistingTiming(entryName string) func() {
	return l.timer(entryName, true)
}

func (l *LogData) timer(entryName string, accumulate bool) func() {
	started := time.Now()
	return func() {
		elapsed := time.Since(started).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		if accumulate {
			elapsed += l.timings[entryName]
		}
		l.timings[entryName] = elapsed
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields[key] = value
}

// Log returns an entry carrying every field and timing recorded so far.
func (l *LogData) Log() *logrus.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	all := make(logrus.Fields, len(l.fields)+len(l.timings))
	for key, value := range l.fields {
		all[key] = value
	}
	for key, value := range l.timings {
		all[key] = value
	}
	return l.logger.WithFields(all)
}
