package pretty

import (
	"fmt"

	"github.com/disc0nn3ct/SAST-RPA/common"
)

// Exit panics with an ExitCode payload, which the main function
// recovers and converts to a process exit with the given code.
func Exit(code int, format string, rest ...interface{}) error {
	var message string
	if len(rest) > 0 {
		message = fmt.Sprintf(format, rest...)
	} else {
		message = format
	}
	panic(common.ExitCode{Code: code, Message: fmt.Sprintf("%s%s%s", Red, message, Reset)})
}

// Guard checks the condition, and if it is not true, exits the
// application with the given exit code and message.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}

func Ok() error {
	common.Log("%sOK.%s", Green, Reset)
	return nil
}

func Warning(format string, rest ...interface{}) {
	common.Log("%sWarning: %s%s", Yellow, fmt.Sprintf(format, rest...), Reset)
}

func Highlight(format string, rest ...interface{}) {
	common.Log("%s%s%s", Cyan, fmt.Sprintf(format, rest...), Reset)
}

func Note(format string, rest ...interface{}) {
	common.Log("%sNote: %s%s", Grey, fmt.Sprintf(format, rest...), Reset)
}
