package main

import (
	"fmt"
	"os"

	"github.com/crytic/gsolc/cmd"
	"github.com/crytic/gsolc/cmd/exitcodes"
)

func main() {
	// Run our root CLI command, which contains all underlying command logic and will handle parsing/invocation.
	err := cmd.Execute()

	// Obtain the actual error and exit code from the error, if any.
	var exitCode int
	err, exitCode = exitcodes.GetInnerErrorAndExitCode(err)

	// If we have an error that was not already reported by the command, print it.
	if err != nil && exitCode != exitcodes.ExitCodeHandledError {
		fmt.Fprintln(os.Stderr, err)
	}

	// If we have a non-success exit code, exit with it. Handled errors still signal failure to the caller.
	if exitCode == exitcodes.ExitCodeHandledError {
		os.Exit(exitcodes.ExitCodeGeneralError)
	} else if exitCode != exitcodes.ExitCodeSuccess {
		os.Exit(exitCode)
	}
}
