// Package installer installs the npm and bower dependencies of a generated
// project and checks that the front-end toolchain is available.
package installer

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"go.uber.org/zap"
)

// Tools checked by Check, in report order.
var Tools = []string{"node", "npm", "bower", "grunt"}

// Step is one package manager invocation.
type Step struct {
	Tool string
	Args []string
}

// Steps run by Install, in order.
var Steps = []Step{
	{Tool: "npm", Args: []string{"install"}},
	{Tool: "bower", Args: []string{"install"}},
}

// Options controls an Install call.
type Options struct {
	// SkipInstall prints how to install instead of running anything.
	SkipInstall bool
	// SkipMessage suppresses the message printed before installing.
	SkipMessage bool
}

// Runner executes bin with args in dir.
type Runner func(ctx context.Context, dir, bin string, args ...string) error

// Installer runs package managers. LookPath and Run are replaceable for
// tests.
type Installer struct {
	LookPath func(file string) (string, error)
	Run      Runner
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *zap.Logger
}

// New returns an installer that resolves tools on PATH and streams their
// output to stdout and stderr.
func New(stdout, stderr io.Writer, logger *zap.Logger) *Installer {
	if logger == nil {
		logger = zap.NewNop()
	}
	i := &Installer{
		LookPath: exec.LookPath,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
	}
	i.Run = i.execRun
	return i
}

func (i *Installer) execRun(ctx context.Context, dir, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = i.Stdout
	cmd.Stderr = i.Stderr
	return cmd.Run()
}

func (i *Installer) logger() *zap.Logger {
	if i.Logger == nil {
		return zap.NewNop()
	}
	return i.Logger
}

// Install runs every step in dir. A tool that is not on PATH is skipped with
// a warning; a tool that fails stops the install with an error. Messages for
// the user go to w.
func (i *Installer) Install(ctx context.Context, dir string, w io.Writer, opts Options) ([]string, error) {
	if opts.SkipInstall {
		if !opts.SkipMessage {
			fmt.Fprintf(w, "\nI'm all done. Just run npm install & bower install to install the required dependencies.\n")
		}
		return nil, nil
	}

	if !opts.SkipMessage {
		fmt.Fprintf(w, "\nI'm all done. Running npm install & bower install for you to install the required dependencies.\nIf this fails, try running the command yourself.\n\n")
	}

	var warnings []string
	for _, step := range Steps {
		bin, err := i.LookPath(step.Tool)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s not found, skipping %s %s (run `crxgen doctor`)",
				step.Tool, step.Tool, step.Args[0]))
			continue
		}

		i.logger().Debug("running package manager",
			zap.String("bin", bin),
			zap.Strings("args", step.Args),
			zap.String("dir", dir))

		if err := i.Run(ctx, dir, bin, step.Args...); err != nil {
			return warnings, fmt.Errorf("%s %s in %s: %w", step.Tool, step.Args[0], dir, err)
		}
	}
	return warnings, nil
}

// ToolStatus is the result of looking up one tool.
type ToolStatus struct {
	Name  string
	Path  string
	Found bool
}

// Check looks up every tool in Tools and prints one line per tool to w.
func (i *Installer) Check(w io.Writer) []ToolStatus {
	fmt.Fprintln(w, "Toolchain check:")

	statuses := make([]ToolStatus, 0, len(Tools))
	for _, name := range Tools {
		path, err := i.LookPath(name)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s not found\n", name)
			statuses = append(statuses, ToolStatus{Name: name})
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
		statuses = append(statuses, ToolStatus{Name: name, Path: path, Found: true})
	}
	return statuses
}
