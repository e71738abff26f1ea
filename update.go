package asd

import "fmt"

// wavelengthFields is the set of Metadata field names whose update
// triggers a recomputed wavelength axis, per the aggregate's field-update
// contract.
var wavelengthFields = map[string]bool{
	"channel1Wavelength": true,
	"channels":           true,
	"wavelengthStep":     true,
}

// Update sets a single named Metadata field on f. An unknown field name
// is rejected with ErrUnknownField, and a value of the wrong Go type is
// an ErrInvariantViolation. When the field is one of channel1Wavelength,
// channels, or wavelengthStep the derived wavelength axis is recomputed
// so the two never drift apart.
func (f *AsdFile) Update(field string, value any) error {
	assign := func(ok bool, expect string) error {
		if !ok {
			return fmt.Errorf("%w: %s expects %s", ErrInvariantViolation, field, expect)
		}
		return nil
	}

	switch field {
	case "channel1Wavelength":
		v, ok := value.(float32)
		if err := assign(ok, "float32"); err != nil {
			return err
		}
		f.Metadata.Channel1Wavelength = v
	case "wavelengthStep":
		v, ok := value.(float32)
		if err := assign(ok, "float32"); err != nil {
			return err
		}
		f.Metadata.WavelengthStep = v
	case "channels":
		v, ok := value.(uint16)
		if err := assign(ok, "uint16"); err != nil {
			return err
		}
		f.Metadata.Channels = v
	case "comments":
		v, ok := value.(string)
		if err := assign(ok, "string"); err != nil {
			return err
		}
		if len(v) > 157 {
			return fmt.Errorf("%w: comments exceed the 157-byte field", ErrInvariantViolation)
		}
		f.Metadata.Comments = v
	case "splice1Wavelength":
		v, ok := value.(float32)
		if err := assign(ok, "float32"); err != nil {
			return err
		}
		f.Metadata.Splice1Wavelength = v
	case "splice2Wavelength":
		v, ok := value.(float32)
		if err := assign(ok, "float32"); err != nil {
			return err
		}
		f.Metadata.Splice2Wavelength = v
	case "swir1Gain":
		v, ok := value.(uint16)
		if err := assign(ok, "uint16"); err != nil {
			return err
		}
		f.Metadata.Swir1Gain = v
	case "swir2Gain":
		v, ok := value.(uint16)
		if err := assign(ok, "uint16"); err != nil {
			return err
		}
		f.Metadata.Swir2Gain = v
	case "integrationTimeMs":
		v, ok := value.(uint32)
		if err := assign(ok, "uint32"); err != nil {
			return err
		}
		f.Metadata.IntegrationTimeMs = v
	case "hasTrailer":
		v, ok := value.(bool)
		if err := assign(ok, "bool"); err != nil {
			return err
		}
		f.HasTrailer = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	if wavelengthFields[field] {
		f.invalidateWavelengths()
	}
	return nil
}

// invalidateWavelengths is a no-op today because Wavelengths() always
// derives its result fresh from Metadata; it exists as the single seam
// a future cached-axis implementation would hook into.
func (f *AsdFile) invalidateWavelengths() {}
