package pass

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// WholeNumberAtLeast returns an option check accepting integers >= min.
func WholeNumberAtLeast(min int64) func(cty.Value) error {
	return func(v cty.Value) error {
		bf := v.AsBigFloat()
		if !bf.IsInt() {
			return fmt.Errorf("must be a whole number, got %s", bf.Text('f', -1))
		}
		if n, _ := bf.Int64(); n < min {
			return fmt.Errorf("must be at least %d, got %d", min, n)
		}
		return nil
	}
}
