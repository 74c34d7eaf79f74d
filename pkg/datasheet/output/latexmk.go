package output

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// outputTail is how much compiler output an ExternalToolError keeps.
const outputTail = 2048

// Latexmk compiles LaTeX sources to PDF by running latexmk as a subprocess.
type Latexmk struct {
	// Command is the executable, "latexmk" when empty.
	Command string
	// ExtraArgs are appended after the default arguments.
	ExtraArgs []string
}

// Compile runs latexmk on texPath, writing into outDir, and returns the path
// of the produced PDF. It blocks until the subprocess exits or ctx is done.
func (l Latexmk) Compile(ctx context.Context, texPath, outDir string) (string, error) {
	command := l.Command
	if command == "" {
		command = "latexmk"
	}
	if _, err := exec.LookPath(command); err != nil {
		return "", &ExternalToolError{Tool: command, Err: err}
	}

	args := append([]string{
		texPath,
		"-pdf",
		"-interaction=nonstopmode",
		"-halt-on-error",
		"--output-directory=" + outDir,
	}, l.ExtraArgs...)
	cmd := exec.CommandContext(ctx, command, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", &ExternalToolError{Tool: command, Output: tail(out.String(), outputTail), Err: err}
	}

	base := strings.TrimSuffix(filepath.Base(texPath), filepath.Ext(texPath))
	return filepath.Join(outDir, base+".pdf"), nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("...%s", s[len(s)-n:])
}
