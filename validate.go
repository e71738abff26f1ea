package asd

import (
	"fmt"

	"github.com/samber/lo"
)

// Validate re-checks the cross-record invariants that span more than one
// section of a decoded AsdFile, returning every violation found rather
// than stopping at the first. It does not re-parse anything; it only
// inspects already-decoded state, so it is cheap enough to call after
// every Decode.
func Validate(f *AsdFile) []error {
	var errs []error

	channels := int(f.Metadata.Channels)

	if f.SectionStatus(sectionSpectrum) == SectionPresent && len(f.Spectrum) != channels {
		errs = append(errs, invariant(fmt.Sprintf(
			"spectrum has %d channels, metadata declares %d", len(f.Spectrum), channels)))
	}

	if f.SectionStatus(sectionReferenceData) == SectionPresent && len(f.ReferenceData.Spectrum) != channels {
		errs = append(errs, invariant(fmt.Sprintf(
			"reference data has %d channels, metadata declares %d", len(f.ReferenceData.Spectrum), channels)))
	}

	if f.SectionStatus(sectionCalibrationHeader) == SectionPresent {
		types := lo.Map(f.CalibrationHeader.Entries, func(e CalibrationEntry, _ int) CalibrationSeriesType {
			return e.Type
		})
		for _, dup := range lo.FindDuplicates(types) {
			// Not itself an error - the format explicitly permits duplicate
			// types and defines last-one-wins - but worth surfacing since a
			// caller who expected every header entry to survive into
			// CalibrationSeries will otherwise be surprised.
			errs = append(errs, fmt.Errorf("calibration header repeats type %v; only the last entry's spectrum is retained", dup))
		}
	}

	for _, name := range []string{
		sectionMetadata, sectionSpectrum, sectionReferenceHeader, sectionReferenceData,
		sectionClassifier, sectionDependents, sectionCalibrationHeader,
		sectionCalibrationSeries, sectionAuditLog, sectionSignature,
	} {
		if f.SectionStatus(name) == SectionError {
			errs = append(errs, fmt.Errorf("section %q: %w", name, f.Diagnostics(name)))
		}
	}

	wavelengths := f.Wavelengths()
	if len(wavelengths) != channels {
		errs = append(errs, invariant(fmt.Sprintf(
			"derived wavelength axis has %d entries, metadata declares %d channels", len(wavelengths), channels)))
	}

	return errs
}
