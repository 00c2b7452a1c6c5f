package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFileVar names an explicit .env path that wins over the --env flag.
const EnvFileVar = "LANDING_ENV_FILE"

// EnvLoader loads a .env file chosen by the --env flag.
type EnvLoader struct {
	value       *string
	defaultPath string
}

// AddEnvFlag registers an --env flag on fs and returns its loader.
func AddEnvFlag(fs *flag.FlagSet, defaultPath string) *EnvLoader {
	if fs == nil {
		fs = flag.CommandLine
	}
	if defaultPath == "" {
		defaultPath = ".env"
	}
	return &EnvLoader{
		value:       fs.String("env", defaultPath, "Path to the .env file"),
		defaultPath: defaultPath,
	}
}

// Load overlays the first readable candidate onto the process environment
// and returns its path. Candidates are $LANDING_ENV_FILE, the flag value,
// the flag value's basename and finally the default path.
func (l *EnvLoader) Load() (string, error) {
	if l == nil {
		return "", errors.New("env loader is nil")
	}

	requested := ""
	if l.value != nil {
		requested = strings.TrimSpace(*l.value)
	}
	if requested == "" {
		requested = l.defaultPath
	}

	for _, candidate := range l.candidates(requested) {
		if err := godotenv.Overload(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("failed to load env file from %s", requested)
}

func (l *EnvLoader) candidates(requested string) []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}

	add(strings.TrimSpace(os.Getenv(EnvFileVar)))
	add(requested)
	add(filepath.Base(requested))
	add(l.defaultPath)
	return out
}
