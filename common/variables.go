package common

import (
	"time"
)

var (
	LogLinenumbers bool
	LogHides       []string
	When           = time.Now().Unix()

	silentFlag bool
	debugFlag  bool
	traceFlag  bool
)

// DefineVerbosity wires command line verbosity selections into the
// logging functions. Trace implies debug, and silence loses to both.
func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent
	debugFlag = debug
	traceFlag = trace
}

func Silent() bool {
	return silentFlag && !debugFlag && !traceFlag
}

func DebugFlag() bool {
	return debugFlag || traceFlag
}

func TraceFlag() bool {
	return traceFlag
}
