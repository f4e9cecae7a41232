package emit

import (
	"errors"
	"fmt"
	"strings"
)

// Policy selects how a glyph cell picks its color from the source image
type Policy uint8

const (
	// PolicyNearest samples the source pixel at the center of the cell's region
	PolicyNearest Policy = iota
	// PolicyAverage averages the cell's region in linear RGB
	PolicyAverage
	// PolicyLanczos takes colors from a Lanczos3 downscale to grid size
	PolicyLanczos
	// PolicyStride walks the grid text by flat index using the source width as
	// row stride; characters landing outside the source are dropped
	PolicyStride
)

var ErrUnknownPolicy = errors.New("emit: unknown sampling policy")

var policyNames = [...]string{
	PolicyNearest: "nearest",
	PolicyAverage: "average",
	PolicyLanczos: "lanczos",
	PolicyStride:  "stride",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// ParsePolicy resolves a policy by name, case-insensitive
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "nearest", "n", "":
		return PolicyNearest, nil
	case "average", "avg", "a":
		return PolicyAverage, nil
	case "lanczos", "l":
		return PolicyLanczos, nil
	case "stride", "legacy":
		return PolicyStride, nil
	}
	return 0, fmt.Errorf("%w: %q (use nearest, average, lanczos or stride)", ErrUnknownPolicy, s)
}
