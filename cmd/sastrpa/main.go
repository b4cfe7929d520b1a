package main

import (
	"os"

	"github.com/disc0nn3ct/SAST-RPA/cmd"
	"github.com/disc0nn3ct/SAST-RPA/common"
)

// ExitProtection turns ExitCode panics raised by pretty.Exit/Guard into
// clean process exits, after draining pending log output.
func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.WaitLogs()
		panic(status)
	}
}

func main() {
	defer ExitProtection()
	cmd.Execute()
}
