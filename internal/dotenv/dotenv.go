// Package dotenv loads KEY=VALUE pairs from a .env file into the process
// environment. Variables already set in the environment are left untouched.
package dotenv

import (
	"bufio"
	"os"
	"strings"
)

// Load reads the given file (e.g. ".env") and sets an environment variable
// for each line of the form KEY=VALUE. Blank lines and lines starting with
// # are skipped, surrounding quotes are stripped, and keys already present
// in the environment are not overridden. A missing file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		if len(value) >= 2 &&
			(value[0] == '"' && value[len(value)-1] == '"' ||
				value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}
