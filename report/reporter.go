package report

import "sync"

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all lowering messages to the user (default).
)

// Reporter is responsible for displaying errors, warnings, and other kinds of
// messages to the user as lowering runs.  The reporter respects the set log
// level and is synchronized: its methods can be safely called from multiple
// goroutines.  It never terminates the process; the host decides what to do
// with reported failures.
type Reporter struct {
	// The mutex used to synchronize different report method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels above.
	logLevel int

	// The number of errors reported so far.
	errorCount int
}

// NewReporter creates a new reporter with the given log level.
func NewReporter(logLevel int) *Reporter {
	return &Reporter{
		m:        &sync.Mutex{},
		logLevel: logLevel,
	}
}

// ReportError reports a user-facing lowering error.
func (r *Reporter) ReportError(err error) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	if r.logLevel >= LogLevelError {
		displayError(err)
	}
}

// ReportICE reports an internal compiler error.  These are always displayed
// regardless of log level: they indicate a bug in the compiler itself and
// should never be silently swallowed.
func (r *Reporter) ReportICE(err error) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	displayICE(err)
}

// ReportWarning reports a lowering warning.
func (r *Reporter) ReportWarning(msg string) {
	r.m.Lock()
	defer r.m.Unlock()

	if r.logLevel >= LogLevelWarn {
		displayWarning(msg)
	}
}

// ReportVerbose reports an informational message such as a phase
// announcement.
func (r *Reporter) ReportVerbose(tag, msg string) {
	r.m.Lock()
	defer r.m.Unlock()

	if r.logLevel >= LogLevelVerbose {
		displayInfo(tag, msg)
	}
}

// AnyErrors returns whether any errors have been reported.
func (r *Reporter) AnyErrors() bool {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errorCount > 0
}
