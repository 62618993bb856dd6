// Package envsubst resolves {{NAME}} placeholders in text content.
//
// Substitution works on an explicit snapshot of the environment so the
// result depends only on the arguments. Placeholders whose name is not in
// the snapshot are left untouched, and substituted values are never
// scanned again.
package envsubst

import (
	"os"
	"regexp"
	"strings"

	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/joho/godotenv"
)

var placeholder = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Substitute replaces every {{NAME}} in content with env[NAME].
func Substitute(content string, env map[string]string) string {
	if len(env) == 0 || !strings.Contains(content, "{{") {
		return content
	}
	return placeholder.ReplaceAllStringFunc(content, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := env[name]; ok {
			return value
		}
		return match
	})
}

// Placeholders returns the distinct names referenced by content, in order of
// first appearance.
func Placeholders(content string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Environ snapshots the current process environment.
func Environ() map[string]string {
	return Parse(os.Environ())
}

// Parse converts KEY=VALUE pairs into a map. Entries without '=' are skipped;
// later entries win.
func Parse(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = value
	}
	return env
}

// LoadEnvFile reads a dotenv file.
func LoadEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read env file %s", path).
			WithDetail("path", path)
	}
	return env, nil
}

// Merge combines snapshots; values from later snapshots win.
func Merge(snapshots ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, s := range snapshots {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}
