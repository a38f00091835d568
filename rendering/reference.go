package rendering

import (
	"fmt"
	"math"

	"github.com/mmuldo/colorimetry/spectral"
	"github.com/mmuldo/colorimetry/validate"
)

// Kind identifies the family of a reference illuminant.
type Kind int

const (
	// Planckian is a blackbody radiator, used below DaylightThreshold.
	Planckian Kind = iota
	// DSeries is CIE daylight, used from DaylightThreshold up.
	DSeries
)

// DaylightThreshold is the CCT at which the reference switches from a
// Planckian radiator to CIE daylight. It belongs to the daylight branch.
const DaylightThreshold = 5000.0

// minReference keeps the blackbody reference finite for spectra whose CCT
// estimate falls far outside the McCamy range.
const minReference = 1000.0

func (k Kind) String() string {
	switch k {
	case Planckian:
		return "planckian"
	case DSeries:
		return "D-series"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name written by MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "planckian":
		*k = Planckian
	case "D-series":
		*k = DSeries
	default:
		return fmt.Errorf("%w: reference kind %q", validate.ErrInvalidInput, b)
	}
	return nil
}

// Reference is the reference illuminant selected for a CCT.
type Reference struct {
	Kind     Kind
	CCT      float64
	Spectrum spectral.Spectrum
}

// ReferenceFor selects and builds the reference illuminant for cct.
func ReferenceFor(cct float64) (Reference, error) {
	if err := validate.Finite("cct", cct); err != nil {
		return Reference{}, err
	}

	if cct < DaylightThreshold {
		s, err := spectral.Planckian(math.Max(minReference, cct))
		if err != nil {
			return Reference{}, err
		}
		return Reference{Kind: Planckian, CCT: cct, Spectrum: s}, nil
	}

	s, err := spectral.Daylight(cct)
	if err != nil {
		return Reference{}, err
	}
	return Reference{Kind: DSeries, CCT: cct, Spectrum: s}, nil
}
