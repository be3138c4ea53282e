package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvPricesFile = "PAPER_PRICES"
	EnvPricesPath = "PAPER_PRICES_PATH"
	EnvCurrency   = "PAPER_CURRENCY"
	EnvVerbose    = "PAPER_VERBOSE"
)

// RunExtension attempts to find and execute an external paper-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "paper-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		if *Verbose {
			fmt.Fprintf(os.Stderr, "External command %q not found in PATH: %v\n", externalCmdName, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv(os.Environ())

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}

// extensionEnv passes the global flags down as environment variables.
func extensionEnv(base []string) []string {
	env := append([]string(nil), base...)
	env = append(env, EnvPricesFile+"="+pricesFileName())
	env = append(env, EnvPricesPath+"="+*pricesPath)
	env = append(env, EnvCurrency+"="+*currency)
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	return env
}
