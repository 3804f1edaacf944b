package allowlist

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// FileEnumerator reads package names from a file, one per line. Blank lines
// and #-comment lines are skipped.
type FileEnumerator struct {
	Path string
}

// ListNames returns the names listed in the backing file.
func (f FileEnumerator) ListNames() (map[string]struct{}, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", f.Path, err)
	}
	return parseNames(string(data)), nil
}

// ExecEnumerator shells out to a package-manager listing command such as
// `pip list --format=freeze` and collects the name token of each output line.
type ExecEnumerator struct {
	Command string
	Args    []string
}

// ListNames runs the configured command and parses its output.
func (e ExecEnumerator) ListNames() (map[string]struct{}, error) {
	out, err := exec.Command(e.Command, e.Args...).Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", e.Command, err)
	}
	return parseNames(string(out)), nil
}

// parseNames extracts one package name per line, cutting anything after a
// version separator ("==", "@", or whitespace).
func parseNames(output string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, sep := range []string{"==", "@", " ", "\t"} {
			if i := strings.Index(line, sep); i >= 0 {
				line = line[:i]
			}
		}
		if line != "" {
			names[line] = struct{}{}
		}
	}
	return names
}
