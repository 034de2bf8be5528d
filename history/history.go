// Package history persists the lines entered in the interactive shell.
package history

import (
	"strings"

	"github.com/metafates/gache"
	"github.com/spf13/viper"
	"github.com/stackr-cli/stackr/filesystem"
	"github.com/stackr-cli/stackr/key"
	"github.com/stackr-cli/stackr/where"
)

var cacher = gache.New[[]string](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the recorded lines, oldest first.
func Get() ([]string, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return []string{}, nil
	}
	return cached, nil
}

// Remember appends line, dropping the oldest entries beyond the configured limit.
// Blank lines and immediate repeats are not recorded.
func Remember(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	lines, err := Get()
	if err != nil {
		return err
	}

	if n := len(lines); n > 0 && lines[n-1] == line {
		return nil
	}
	lines = append(lines, line)

	if limit := viper.GetInt(key.ShellHistoryLimit); limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	return cacher.Set(lines)
}

// Clear forgets every recorded line.
func Clear() error {
	return cacher.Set([]string{})
}
