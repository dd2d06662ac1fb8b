package types

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"
)

// MaxPlatformFeePercent caps the platform fee the authority may set.
const MaxPlatformFeePercent uint32 = 10

// Params holds the marketplace module parameters.
type Params struct {
	PlatformFeePercent uint32 `json:"platform_fee_percent" yaml:"platform_fee_percent"`
}

// DefaultParams returns default marketplace parameters
func DefaultParams() Params {
	return Params{
		PlatformFeePercent: 5,
	}
}

// Validate checks the parameter set against its bounds.
func (p Params) Validate() error {
	if p.PlatformFeePercent > MaxPlatformFeePercent {
		return fmt.Errorf("platform_fee_percent %d exceeds maximum %d", p.PlatformFeePercent, MaxPlatformFeePercent)
	}
	return nil
}

// String implements fmt.Stringer
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
