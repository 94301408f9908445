package parcel

import (
	"fmt"

	"github.com/kikis202/spot/internal/pkg/errs"
)

// Size represents the declared size class of a parcel.
// Sizes other than SizeCustom map one-to-one onto locker sizes, which is what
// locker allocation matches on.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	// This value (0) helps catch uninitialized Size values.
	SizeUnknown Size = iota

	SizeSmall
	SizeMedium
	SizeLarge
	SizeXLarge

	// SizeCustom is for parcels with non-standard dimensions.
	// Custom-sized parcels can never be placed into a locker.
	SizeCustom
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "UNKNOWN",
		SizeSmall:   "SMALL",
		SizeMedium:  "MEDIUM",
		SizeLarge:   "LARGE",
		SizeXLarge:  "XLARGE",
		SizeCustom:  "CUSTOM",
	}
}

func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // SizeUnknown is intentionally excluded as it's invalid
	return map[Size]string{
		SizeSmall:  "SMALL",
		SizeMedium: "MEDIUM",
		SizeLarge:  "LARGE",
		SizeXLarge: "XLARGE",
		SizeCustom: "CUSTOM",
	}
}

// SizeFromString parses the persisted/API representation of a parcel size.
func SizeFromString(s string) (Size, error) {
	for size, str := range getValidSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"size", fmt.Errorf("%q is not a valid parcel size", s))
}

// Validate checks if the Size value is one of the defined size classes.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"size", fmt.Errorf("%d is not a valid parcel size", s))
	}
	return nil
}

// String returns the persisted representation of the size.
// Implements fmt.Stringer; safe to call on any Size value.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
