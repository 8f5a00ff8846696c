package goexpr

import (
	"bufio"
	"path"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/goexpr/statik"
)

//go:generate statik -src=examples

// LoadExamples returns the bundled demo expressions, one per line,
// skipping blank lines and '#' comments.
func LoadExamples() ([]string, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var exprs []string
	for _, fi := range fis {
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			exprs = append(exprs, line)
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return exprs, nil
}
