package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a scene definition from a TOML file. The scene name is
// the file's base name without extension unless overridden later.
func LoadFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("%w: %v", ErrBadScene, err)
	}

	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("%w: %v", ErrBadScene, err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if err := s.Validate(); err != nil {
		return Scene{}, err
	}

	return s, nil
}
