package scaffold

import (
	_ "embed"
	"path/filepath"
)

// File names written by [WriteHelpers] and [WriteHarness].
const (
	HelpersFile = "leetcode-helpers.ts"
	HarnessFile = "setup.ts"
)

var (
	//go:embed leetcode-helpers.ts
	helpersSource []byte

	//go:embed setup.ts
	harnessSource []byte
)

// Helpers returns the source of the helper library imported by generated
// files.
func Helpers() string {
	return string(helpersSource)
}

// Harness returns the source of the module preloaded by the default run
// command. It counts assertions, reports failures without stopping the run
// and prints a summary on exit.
func Harness() string {
	return string(harnessSource)
}

// WriteHelpers writes the helper library into dir and returns its path. An
// existing file is only replaced when force is set.
func WriteHelpers(dir string, force bool) (string, error) {
	return writeAsset(dir, HelpersFile, helpersSource, force)
}

// WriteHarness writes the run harness into dir, which should be the
// directory the run command is started from.
func WriteHarness(dir string, force bool) (string, error) {
	return writeAsset(dir, HarnessFile, harnessSource, force)
}

func writeAsset(dir, name string, data []byte, force bool) (string, error) {
	path := filepath.Join(dir, name)

	err := writeFile(path, data, force)
	if err != nil {
		return "", err
	}

	return path, nil
}
