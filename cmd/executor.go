// Package cmd wraps process execution behind an interface so packages that
// shell out (the tmux host, health checks) can be tested without spawning
// real processes.
package cmd

import "os/exec"

// Executor runs external commands.
type Executor interface {
	Run(cmd *exec.Cmd) error
	Output(cmd *exec.Cmd) ([]byte, error)
}

type realExecutor struct{}

func (realExecutor) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

func (realExecutor) Output(cmd *exec.Cmd) ([]byte, error) {
	return cmd.Output()
}

// MakeExecutor returns the production Executor backed by os/exec.
func MakeExecutor() Executor {
	return realExecutor{}
}
