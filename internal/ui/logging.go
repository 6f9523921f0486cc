package ui

import (
	"os"
	"time"

	"github.com/pterm/pterm"
)

const timestampFormat = "2006-01-02 15:04:05"

func SetDebugEnabled(enabled bool) {
	pterm.PrintDebugMessages = enabled
}

func timestamp() string {
	return pterm.Gray(time.Now().Format(timestampFormat))
}

func Printf(format string, a ...interface{}) {
	pterm.Printf(format, a...)
}

func Printfln(format string, a ...interface{}) {
	pterm.Printfln(format, a...)
}

func Debug(format string, a ...interface{}) {
	pterm.Debug.Printfln(timestamp()+" "+format, a...)
}

func Info(format string, a ...interface{}) {
	pterm.Info.Printfln(timestamp()+" "+format, a...)
}

func Warning(format string, a ...interface{}) {
	pterm.Warning.Printfln(timestamp()+" "+format, a...)
}

func Error(format string, a ...interface{}) {
	pterm.Error.Printfln(timestamp()+" "+format, a...)
}

func Fatal(format string, a ...interface{}) {
	pterm.Fatal.Printfln(timestamp()+" "+format, a...)
}

// FatalWithoutStacktrace prints a fatal message and exits
// without the panic output of pterm's Fatal printer.
func FatalWithoutStacktrace(format string, a ...interface{}) {
	pterm.Fatal.WithFatal(false).Printfln(timestamp()+" "+format, a...)
	os.Exit(1)
}
