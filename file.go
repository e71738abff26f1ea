package asd

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// SectionState tags whether an optional section was present, absent
// (not required at this file's version), or present but failed to
// decode.
type SectionState int

const (
	SectionAbsent SectionState = iota
	SectionPresent
	SectionError
)

func (s SectionState) String() string {
	switch s {
	case SectionPresent:
		return "present"
	case SectionError:
		return "error"
	default:
		return "absent"
	}
}

// Section names used as keys into AsdFile's partial-success bookkeeping
// and as the "section" argument to the primitive codec's error helpers.
const (
	sectionMetadata          = "metadata"
	sectionSpectrum          = "spectrum"
	sectionReferenceHeader   = "reference header"
	sectionReferenceData     = "reference data"
	sectionClassifier        = "classifier"
	sectionDependents        = "dependents"
	sectionCalibrationHeader = "calibration header"
	sectionCalibrationSeries = "calibration series"
	sectionAuditLog          = "audit log"
	sectionSignature         = "signature"
)

// AsdFile is the decoded aggregate of a single ASD spectral file: the
// version tag, the nine version-gated sections, and the trailer flag.
// Sections not required at this file's version are left at their zero
// value with SectionAbsent recorded against them; sections that are
// required but fail to decode are left at their zero value too, with
// SectionError recorded and the triggering error retained for
// Diagnostics.
type AsdFile struct {
	Version FileVersion

	Metadata Metadata
	Spectrum Spectrum

	ReferenceHeader ReferenceFileHeader
	ReferenceData   ReferenceData

	Classifier ClassifierData
	Dependents Dependents

	CalibrationHeader CalibrationHeader
	CalibrationSeries CalibrationSeries

	AuditLog  AuditLog
	Signature Signature

	// HasTrailer records whether the three-byte 0xFF 0xFE 0xFD marker was
	// present on read. Write reproduces it only when this is true.
	HasTrailer bool

	states map[string]SectionState
	errs   map[string]error
}

// SectionStatus reports whether the named section decoded successfully,
// was absent at this file's version, or failed.
func (f *AsdFile) SectionStatus(name string) SectionState {
	if f.states == nil {
		return SectionAbsent
	}
	return f.states[name]
}

// Diagnostics returns the decode error recorded for a failed section, or
// nil if that section decoded cleanly or was never attempted.
func (f *AsdFile) Diagnostics(name string) error {
	if f.errs == nil {
		return nil
	}
	return f.errs[name]
}

func (f *AsdFile) markOK(name string) {
	if f.states == nil {
		f.states = make(map[string]SectionState)
	}
	f.states[name] = SectionPresent
}

func (f *AsdFile) markFailed(name string, err error) {
	if f.states == nil {
		f.states = make(map[string]SectionState)
	}
	if f.errs == nil {
		f.errs = make(map[string]error)
	}
	f.states[name] = SectionError
	f.errs[name] = err
}

const trailerSize = 3

var trailerBytes = [trailerSize]byte{0xFF, 0xFE, 0xFD}

// Read loads an ASD file from disk and decodes it. IO failure wrapping
// ErrIOFailure aborts immediately; a section that fails to decode after
// that point is recorded as SectionError on the returned aggregate
// rather than aborting the whole read, per the driver's recoverable
// per-section decode policy. A nil *AsdFile is returned only when the
// file could not be read, its version tag could not be resolved, or the
// mandatory metadata block could not be decoded.
func Read(path string, logger *zap.Logger) (*AsdFile, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	f, err := Decode(raw)
	if err != nil {
		logger.Error("decode failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	for name, state := range f.states {
		if state == SectionError {
			logger.Warn("section failed to decode",
				zap.String("path", path),
				zap.String("section", name),
				zap.Error(f.errs[name]),
			)
		}
	}
	logger.Info("decoded asd file",
		zap.String("path", path),
		zap.String("version", f.Version.String()),
		zap.Int("channels", int(f.Metadata.Channels)),
	)
	return f, nil
}

// Decode parses a complete in-memory ASD file image. The trailer, if
// present, is stripped before version dispatch. Metadata and Spectrum
// are mandatory; every other section is gated by file version and is
// individually recoverable on decode failure.
func Decode(raw []byte) (*AsdFile, error) {
	f := &AsdFile{}

	buf := raw
	if len(buf) >= trailerSize && [trailerSize]byte(buf[len(buf)-trailerSize:]) == trailerBytes {
		f.HasTrailer = true
		buf = buf[:len(buf)-trailerSize]
	}

	version, offset, err := decodeFileVersion(buf)
	if err != nil {
		return nil, err
	}
	f.Version = version

	meta, offset, err := decodeMetadata(buf, offset)
	if err != nil {
		f.markFailed(sectionMetadata, err)
		return nil, err
	}
	f.Metadata = meta
	f.markOK(sectionMetadata)

	spec, offset, err := decodeSpectrum(buf, offset, meta.Channels, sectionSpectrum)
	if err != nil {
		f.markFailed(sectionSpectrum, err)
		return f, nil
	}
	f.Spectrum = spec
	f.markOK(sectionSpectrum)

	// Optional sections are recoverable: a failed decode records the
	// error and leaves offset at the section's start, so the next
	// section is attempted from the same position. The one exception is
	// the calibration series, which is read per header entry and so is
	// skipped when the calibration header fails.
	if version.AtLeast(Version2) {
		hdr, next, err := decodeReferenceFileHeader(buf, offset)
		if err != nil {
			f.markFailed(sectionReferenceHeader, err)
		} else {
			f.ReferenceHeader = hdr
			f.markOK(sectionReferenceHeader)
			offset = next
		}

		ref, next, err := decodeReferenceData(buf, offset, meta.Channels)
		if err != nil {
			f.markFailed(sectionReferenceData, err)
		} else {
			f.ReferenceData = ref
			f.markOK(sectionReferenceData)
			offset = next
		}
	}

	if version.AtLeast(Version6) {
		cls, next, err := decodeClassifierData(buf, offset)
		if err != nil {
			f.markFailed(sectionClassifier, err)
		} else {
			f.Classifier = cls
			f.markOK(sectionClassifier)
			offset = next
		}

		dep, next, err := decodeDependents(buf, offset)
		if err != nil {
			f.markFailed(sectionDependents, err)
		} else {
			f.Dependents = dep
			f.markOK(sectionDependents)
			offset = next
		}
	}

	if version.AtLeast(Version7) {
		hdr, next, err := decodeCalibrationHeader(buf, offset)
		if err != nil {
			f.markFailed(sectionCalibrationHeader, err)
		} else {
			f.CalibrationHeader = hdr
			f.markOK(sectionCalibrationHeader)
			offset = next

			series, next, err := decodeCalibrationSeries(buf, offset, hdr, meta.Channels)
			if err != nil {
				f.markFailed(sectionCalibrationSeries, err)
			} else {
				f.CalibrationSeries = series
				f.markOK(sectionCalibrationSeries)
				offset = next
			}
		}
	}

	if version.AtLeast(Version8) {
		audit, next, err := decodeAuditLog(buf, offset)
		if err != nil {
			f.markFailed(sectionAuditLog, err)
		} else {
			f.AuditLog = audit
			f.markOK(sectionAuditLog)
			offset = next
		}

		sig, next, err := decodeSignature(buf, offset)
		if err != nil {
			f.markFailed(sectionSignature, err)
		} else {
			f.Signature = sig
			f.markOK(sectionSignature)
			offset = next
		}
	}

	_ = offset
	return f, nil
}

// Write encodes f and writes it to path. Encoding is strict: any
// section that fails to encode aborts the write before any bytes reach
// disk.
func Write(path string, f *AsdFile) error {
	raw, err := Encode(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return nil
}

// Encode serializes f back to its on-disk byte image, reproducing the
// trailer only if it was present at decode time.
func Encode(f *AsdFile) ([]byte, error) {
	buf := new(bytes.Buffer)

	magic, err := encodeFileVersion(f.Version)
	if err != nil {
		return nil, err
	}
	buf.Write(magic)

	metaBytes, err := encodeMetadata(f.Metadata)
	if err != nil {
		return nil, err
	}
	buf.Write(metaBytes)

	buf.Write(encodeSpectrum(f.Spectrum))

	if f.Version.AtLeast(Version2) {
		encodeReferenceFileHeader(buf, f.ReferenceHeader)
		encodeReferenceData(buf, f.ReferenceData)
	}

	if f.Version.AtLeast(Version6) {
		encodeClassifierData(buf, f.Classifier)
		encodeDependents(buf, f.Dependents)
	}

	if f.Version.AtLeast(Version7) {
		encodeCalibrationHeader(buf, f.CalibrationHeader)
		if err := encodeCalibrationSeries(buf, f.CalibrationHeader, f.CalibrationSeries); err != nil {
			return nil, err
		}
	}

	if f.Version.AtLeast(Version8) {
		if err := encodeAuditLog(buf, f.AuditLog); err != nil {
			return nil, err
		}
		encodeSignature(buf, f.Signature)
	}

	if f.HasTrailer {
		buf.Write(trailerBytes[:])
	}

	return buf.Bytes(), nil
}
