package assets

import "fmt"

// ValidateAssetName checks that a name is a bare identifier usable as a
// filename stem. Separators and dots are rejected so a name can never
// escape the asset directories or swap extensions.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		switch r {
		case '/', '\\', '.':
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
