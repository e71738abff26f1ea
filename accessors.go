package asd

// Wavelengths derives the per-channel wavelength axis from
// Channel1Wavelength and WavelengthStep. Its length always equals
// Metadata.Channels, per the format's cross-record invariant.
func (f *AsdFile) Wavelengths() []float64 {
	n := int(f.Metadata.Channels)
	w := make([]float64, n)
	start := float64(f.Metadata.Channel1Wavelength)
	step := float64(f.Metadata.WavelengthStep)
	for i := 0; i < n; i++ {
		w[i] = start + float64(i)*step
	}
	return w
}

// Raw returns the spectrum exactly as decoded, with no post-processing
// applied.
func (f *AsdFile) Raw() Spectrum {
	return f.Spectrum
}

// Ref returns the white-reference spectrum captured alongside this
// file, if the reference data section decoded successfully.
func (f *AsdFile) Ref() Spectrum {
	return f.ReferenceData.Spectrum
}

// WhiteReference returns the normalized white-reference spectrum,
// distinguishing a file too old to carry one (version < 2) and a
// reference section that failed to decode from an ordinary empty
// spectrum.
func (f *AsdFile) WhiteReference() (Spectrum, error) {
	if !f.Version.AtLeast(Version2) {
		return nil, invariant("white reference requires file version >= 2")
	}
	if f.SectionStatus(sectionReferenceData) != SectionPresent {
		return nil, invariant("reference data section is unavailable")
	}
	return Normalize(f.ReferenceData.Spectrum, f.Metadata), nil
}

// Reflectance computes the reflectance spectrum for this file, gated on
// the preconditions stated in the format (version >= 2, DataType ==
// reflectance, a recorded reference time). It returns ErrInvariantViolation
// if any precondition fails.
func (f *AsdFile) Reflectance() (Spectrum, error) {
	if !f.Version.AtLeast(Version2) {
		return nil, invariant("reflectance requires file version >= 2")
	}
	if f.Metadata.DataType != DataTypeReflectance {
		return nil, invariant("reflectance requires DataType == reflectance")
	}
	if f.Metadata.ReferenceTime.Unix() <= 0 {
		return nil, invariant("reflectance requires a recorded reference time")
	}
	return Reflectance(f.Spectrum, f.ReferenceData.Spectrum, f.Metadata), nil
}

// Radiance computes the calibrated radiance spectrum for this file,
// gated on version >= 7, DataType == radiance, and at least three
// calibration slots populated.
func (f *AsdFile) Radiance() (Spectrum, error) {
	if !f.Version.AtLeast(Version7) {
		return nil, invariant("radiance requires file version >= 7")
	}
	if f.Metadata.DataType != DataTypeRadiance {
		return nil, invariant("radiance requires DataType == radiance")
	}
	if populatedSlots(f.CalibrationSeries) < 3 {
		return nil, invariant("radiance requires at least three populated calibration slots")
	}
	return Radiance(f.Spectrum, f.ReferenceData.Spectrum, f.CalibrationSeries, f.Metadata), nil
}

func populatedSlots(s CalibrationSeries) int {
	n := 0
	for _, slot := range []Spectrum{s.Absolute, s.Base, s.Lamp, s.FiberOptic} {
		if slot != nil {
			n++
		}
	}
	return n
}

// SaturationErrors reports the saturation/TEC alarm flags set in
// Metadata.Flags2.
func (f *AsdFile) SaturationErrors() []SaturationFlag {
	return DecodeSaturationFlags(f.Metadata.Flags2)
}
