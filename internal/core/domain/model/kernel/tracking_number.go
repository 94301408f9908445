package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kikis202/spot/internal/pkg/errs"
)

// trackingNumberPrefix is the carrier prefix on every tracking number.
const trackingNumberPrefix = "SPOT"

// trackingNumberPattern matches the full tracking-number format:
// prefix, base36 millisecond timestamp, six base36 random characters.
var trackingNumberPattern = regexp.MustCompile(`^SPOT-[0-9A-Z]+-[0-9A-Z]{6}$`)

// ErrTrackingNumberIsNotConstructed is returned when validating a zero-value TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via GenerateTrackingNumber or TrackingNumberFromString")

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// TrackingNumber is the human-readable, immutable identifier a parcel is looked
// up by publicly. Format: SPOT-<base36 timestamp>-<6 base36 characters>, upper-cased.
//
// A generated tracking number is not guaranteed unique; the probability of a
// collision (same millisecond and same six random characters) is astronomically
// small, and the persistence layer's uniqueness constraint is the backstop that
// turns such a collision into a conflict error.
type TrackingNumber struct {
	value string
}

// GenerateTrackingNumber produces a fresh tracking number from the current
// timestamp and a random six-character suffix.
func GenerateTrackingNumber() TrackingNumber {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}

	raw := fmt.Sprintf("%s-%s-%s", trackingNumberPrefix, timestamp, suffix)
	return TrackingNumber{value: strings.ToUpper(raw)}
}

// TrackingNumberFromString parses a tracking number supplied by a client or
// loaded from persistence. Returns a validation error when the format does not
// match the SPOT tracking-number pattern.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber", fmt.Errorf("%q does not match the SPOT tracking number format", s))
	}
	return TrackingNumber{value: s}, nil
}

// String returns the tracking number as shown to users.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks if the tracking number is properly constructed.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
