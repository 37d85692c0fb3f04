package report

import (
	"errors"
	"fmt"
	"os"
)

// ReportICE reports an internal compiler error.  These are errors that
// specifically result for a bug or unexpected condition occurring with the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayEndPhase(false)
	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately, but which result from invalid input to the
// compiler itself: a missing tree file, a malformed module file, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayEndPhase(false)
		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a compilation error: ie. an erroneous program.
// The reprPath is the path displayed to the user.  The srcPath is the path to
// the source text the span refers to: it may be empty in which case no source
// text is displayed.  The span may be nil in which case no position
// information will be printed.
func ReportCompileError(reprPath, srcPath string, span *TextSpan, kind ErrorKind, message string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayCompileMessage(true, kind, reprPath, srcPath, span, message)
	}
}

// ReportCompileWarning reports a compilation warning.  The arguments are of the
// same form as those to ReportCompileError.
func ReportCompileWarning(reprPath, srcPath string, span *TextSpan, kind ErrorKind, message string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel > LogLevelError {
		displayCompileMessage(false, kind, reprPath, srcPath, span, message)
	}
}

// ReportError reports err: compile errors are displayed with their kind and
// position, all other errors as standard errors.
func ReportError(reprPath, srcPath string, err error) {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		ReportCompileError(reprPath, srcPath, cerr.Span, cerr.Kind, cerr.Message)
	} else {
		ReportStdError(reprPath, err)
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayStdError(reprPath, err)
	}
}

// ReportModuleWarning reports a warning about a module file.
func ReportModuleWarning(modName, message string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel > LogLevelError {
		displayModuleWarning(modName, message)
	}
}

// ReportInfo displays an informational message.
func ReportInfo(tag, message string) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfo(tag, message)
	}
}

// -----------------------------------------------------------------------------

// ReportBeginPhase reports the beginning of a compilation phase.
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayBeginPhase(phase)
	}
}

// ReportEndPhase reports the end of the current compilation phase.
func ReportEndPhase() {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayEndPhase(rep.errorCount == 0)
	}
}

// ReportCompilationFinished displays the closing summary of a compilation.
func ReportCompilationFinished() {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompilationFinished(rep.errorCount == 0, rep.errorCount, rep.warningCount)
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	return rep.errorCount > 0
}
