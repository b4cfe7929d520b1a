package common

// ExitCode is carried as a panic payload from deep failure points up to
// the main function, which recovers it and turns it into a process exit.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) > 0 {
		Log("%s", it.Message)
	}
}
