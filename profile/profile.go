package profile

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pelletier/go-toml"
)

// Profile describes how a lowered module should be targeted.  Profiles are
// written by the user as a `fiddle.toml` file next to the source being built;
// the driver loads one and passes it to the lowering pass.
type Profile struct {
	// TargetTriple is the LLVM target triple stamped onto the lowered module,
	// eg. `x86_64-pc-linux-gnu`.  Empty means the backend's default.
	TargetTriple string `toml:"target-triple"`

	// DataLayout is the LLVM data layout string stamped onto the lowered
	// module.  Empty means the backend's default.
	DataLayout string `toml:"data-layout"`

	// DefaultIntWidth is the bit width of the module's default integer type:
	// the type given to values that have no other type to take, such as the
	// result of an empty block.  Must be one of 8, 16, 32, or 64.
	DefaultIntWidth int `toml:"default-int-width"`
}

// DefaultProfile returns the profile used when no profile file is present.
func DefaultProfile() *Profile {
	return &Profile{DefaultIntWidth: 32}
}

// LoadProfile loads and validates a profile from the TOML file at path.
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open profile file at `%s`: %s", path, err)
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading profile file at `%s`: %s", path, err)
	}

	prof := DefaultProfile()
	if err := toml.Unmarshal(buff, prof); err != nil {
		return nil, fmt.Errorf("error parsing profile file at `%s`: %s", path, err)
	}

	if err := validateProfile(prof); err != nil {
		return nil, err
	}

	return prof, nil
}

// validateProfile checks that the profile contents are usable.
func validateProfile(prof *Profile) error {
	switch prof.DefaultIntWidth {
	case 8, 16, 32, 64:
		return nil
	default:
		return fmt.Errorf("invalid default integer width: %d", prof.DefaultIntWidth)
	}
}
