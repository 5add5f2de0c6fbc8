package frame

import (
	"fmt"
	"strings"
)

// Encoding is the compression standard of a coded frame.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	// EncodingJPEG is ISO/IEC 10918-1 (Motion JPEG).
	EncodingJPEG
	// EncodingH264 is ITU-T H.264 / AVC.
	EncodingH264
	// EncodingH265 is ITU-T H.265 / HEVC.
	EncodingH265
)

// Encoding aliases
const (
	EncodingMJPEG = EncodingJPEG
	EncodingAVC   = EncodingH264
	EncodingHEVC  = EncodingH265
)

// CodedDataFormat is the framing of a coded bitstream.
type CodedDataFormat int

const (
	CodedDataFormatUnknown CodedDataFormat = iota
	// CodedDataFormatJFIF is the JPEG File Interchange Format.
	CodedDataFormatJFIF
	// CodedDataFormatRawNALU is NAL units without start codes or length
	// prefixes.
	CodedDataFormatRawNALU
	// CodedDataFormatByteStream is NAL units prefixed with start codes
	// (Annex B).
	CodedDataFormatByteStream
	// CodedDataFormatAVCC is NAL units prefixed with their 4-byte length.
	CodedDataFormatAVCC
)

// CodedDataFormatHVCC is the H.265 name of CodedDataFormatAVCC
const CodedDataFormatHVCC = CodedDataFormatAVCC

// CodedFrameType is the type of a coded frame.
type CodedFrameType int

const (
	CodedFrameTypeUnknown CodedFrameType = iota
	// CodedFrameTypeNotCoded is a frame dropped by the encoder.
	CodedFrameTypeNotCoded
	// CodedFrameTypeIDR is an H.264/H.265 IDR frame or a JPEG frame.
	CodedFrameTypeIDR
	CodedFrameTypeI
	// CodedFrameTypePIRStart is a P-frame starting an intra refresh.
	CodedFrameTypePIRStart
	CodedFrameTypeP
	// CodedFrameTypePNonRef is a P-frame no other frame refers to.
	CodedFrameTypePNonRef
)

// CodedFrameTypeCoded is an alias of CodedFrameTypeIDR
const CodedFrameTypeCoded = CodedFrameTypeIDR

// CodedFormat describes a coded frame.
type CodedFormat struct {
	Encoding   Encoding
	DataFormat CodedDataFormat
}

var codedDataFormats = map[Encoding][]CodedDataFormat{
	EncodingJPEG: {CodedDataFormatJFIF},
	EncodingH264: {CodedDataFormatRawNALU, CodedDataFormatByteStream, CodedDataFormatAVCC},
	EncodingH265: {CodedDataFormatRawNALU, CodedDataFormatByteStream, CodedDataFormatHVCC},
}

// IsValid reports whether the data format can carry the encoding.
func (f CodedFormat) IsValid() bool {
	for _, d := range codedDataFormats[f.Encoding] {
		if d == f.DataFormat {
			return true
		}
	}
	return false
}

// Intersect reports whether f is valid and present in caps.
func (f CodedFormat) Intersect(caps []CodedFormat) bool {
	if !f.IsValid() {
		return false
	}
	for _, c := range caps {
		if c == f {
			return true
		}
	}
	return false
}

var encodingNames = []enumName[Encoding]{
	{EncodingJPEG, "JPEG"},
	{EncodingH264, "H264"},
	{EncodingH265, "H265"},
	{EncodingJPEG, "MJPEG"},
	{EncodingH264, "AVC"},
	{EncodingH265, "HEVC"},
}

var codedDataFormatNames = []enumName[CodedDataFormat]{
	{CodedDataFormatJFIF, "JFIF"},
	{CodedDataFormatRawNALU, "RAW_NALU"},
	{CodedDataFormatByteStream, "BYTE_STREAM"},
	{CodedDataFormatAVCC, "AVCC"},
	{CodedDataFormatHVCC, "HVCC"},
}

var codedFrameTypeNames = []enumName[CodedFrameType]{
	{CodedFrameTypeNotCoded, "NOT_CODED"},
	{CodedFrameTypeIDR, "IDR"},
	{CodedFrameTypeI, "I"},
	{CodedFrameTypePIRStart, "P_IR_START"},
	{CodedFrameTypeP, "P"},
	{CodedFrameTypePNonRef, "P_NON_REF"},
	{CodedFrameTypeCoded, "CODED"},
}

var mimeTypes = map[Encoding]string{
	EncodingJPEG: "image/jpeg",
	EncodingH264: "video/avc",
	EncodingH265: "video/hevc",
}

func (e Encoding) String() string {
	if s, ok := nameOf(encodingNames, e); ok {
		return s
	}
	return unknownName
}

// ParseEncoding returns the encoding named s, ignoring case.
func ParseEncoding(s string) Encoding { return valueOf(encodingNames, "encoding", s) }

// MimeType returns the MIME type of e, or "" if e is unknown.
func (e Encoding) MimeType() string { return mimeTypes[e] }

func (d CodedDataFormat) String() string {
	if s, ok := nameOf(codedDataFormatNames, d); ok {
		return s
	}
	return unknownName
}

// ParseCodedDataFormat returns the coded data format named s, ignoring case.
func ParseCodedDataFormat(s string) CodedDataFormat {
	return valueOf(codedDataFormatNames, "coded data format", s)
}

func (t CodedFrameType) String() string {
	if s, ok := nameOf(codedFrameTypeNames, t); ok {
		return s
	}
	return unknownName
}

// ParseCodedFrameType returns the coded frame type named s, ignoring case.
func ParseCodedFrameType(s string) CodedFrameType {
	return valueOf(codedFrameTypeNames, "coded frame type", s)
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(b []byte) error {
	*e = ParseEncoding(string(b))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d CodedDataFormat) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *CodedDataFormat) UnmarshalText(b []byte) error {
	*d = ParseCodedDataFormat(string(b))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t CodedFrameType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *CodedFrameType) UnmarshalText(b []byte) error {
	*t = ParseCodedFrameType(string(b))
	return nil
}

// String returns the catalog name of f, or its ENCODING/DATAFORMAT form.
func (f CodedFormat) String() string {
	if name, ok := defaultCatalog.CodedFormatName(f); ok {
		return name
	}
	return fmt.Sprintf("%s/%s", f.Encoding, f.DataFormat)
}

// ParseCodedFormat parses a catalog name or the form produced by
// CodedFormat.String.
func ParseCodedFormat(s string) (CodedFormat, error) {
	return defaultCatalog.ParseCodedFormat(s)
}

// ParseCodedFormat parses a name of c or the form produced by
// CodedFormat.String.
func (c *Catalog) ParseCodedFormat(s string) (CodedFormat, error) {
	if f, ok := c.CodedFormat(s); ok {
		return f, nil
	}
	enc, data, ok := strings.Cut(s, "/")
	if !ok || strings.Contains(data, "/") {
		return CodedFormat{}, fmt.Errorf("%w: coded format '%s'", ErrInvalidArgument, s)
	}
	return CodedFormat{
		Encoding:   ParseEncoding(enc),
		DataFormat: ParseCodedDataFormat(data),
	}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (f CodedFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *CodedFormat) UnmarshalText(b []byte) error {
	parsed, err := ParseCodedFormat(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
