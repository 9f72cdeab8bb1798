package readme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Static fragment file names, looked up in the static parts directory.
const (
	StartFragment = "README-start.md"
	EndFragment   = "README-end.md"
)

// ErrFragment marks a failure to read one of the static fragments.
var ErrFragment = errors.New("static fragment unavailable")

// Fragments is the pre-written text wrapped around the generated content.
type Fragments struct {
	Start string
	End   string
}

// ReadFragments loads README-start.md and README-end.md from dir. Both must
// be readable.
func ReadFragments(dir string) (Fragments, error) {
	start, err := readFragment(dir, StartFragment)
	if err != nil {
		return Fragments{}, err
	}
	end, err := readFragment(dir, EndFragment)
	if err != nil {
		return Fragments{}, err
	}
	return Fragments{Start: start, End: end}, nil
}

func readFragment(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFragment, err)
	}
	return string(data), nil
}
