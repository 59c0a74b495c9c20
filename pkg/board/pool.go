package board

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/ecbingo/ecbingo/pkg/errors"
)

//go:embed categories.txt
var defaultPool string

// DefaultPool returns the built-in category pool.
func DefaultPool() []string {
	pool, _ := ReadPool(strings.NewReader(defaultPool))
	return pool
}

// ReadPool reads one category per line. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
func ReadPool(r io.Reader) ([]string, error) {
	var pool []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pool = append(pool, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read category pool")
	}
	return pool, nil
}

// LoadPool reads a pool file, or returns the default pool when path is empty.
func LoadPool(path string) ([]string, error) {
	if path == "" {
		return DefaultPool(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open category pool")
	}
	defer f.Close()

	pool, err := ReadPool(f)
	if err != nil {
		return nil, err
	}
	if len(pool) < CategoryCount {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"category pool %s has %d entries, need at least %d", path, len(pool), CategoryCount)
	}
	return pool, nil
}
