package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/videodefs/internal/logging"
)

var logger = logging.NewLogger("frame")

const unknownName = "UNKNOWN"

// enumName binds a value to its name. The first entry of a value in a
// table is its canonical name; following ones are parse-only aliases.
type enumName[T comparable] struct {
	value T
	name  string
}

func nameOf[T comparable](names []enumName[T], v T) (string, bool) {
	for _, n := range names {
		if n.value == v {
			return n.name, true
		}
	}
	return "", false
}

// valueOf looks s up in names, ignoring case. An unknown name logs a
// warning and yields the zero value.
func valueOf[T comparable](names []enumName[T], kind, s string) T {
	var zero T
	for _, n := range names {
		if strings.EqualFold(n.name, s) {
			return n.value
		}
	}
	if !strings.EqualFold(s, unknownName) {
		logger.Warnf("unknown %s '%s'", kind, s)
	}
	return zero
}

var pixFormatNames = []enumName[PixFormat]{
	{PixFormatRaw, "RAW"},
	{PixFormatYUV420, "YUV420"},
	{PixFormatYUV422, "YUV422"},
	{PixFormatYUV444, "YUV444"},
	{PixFormatGray, "GRAY"},
	{PixFormatRGB24, "RGB24"},
	{PixFormatRGBA32, "RGBA32"},
	{PixFormatBayer, "BAYER"},
	{PixFormatDepth, "DEPTH"},
	{PixFormatDepthFloat, "DEPTH_FLOAT"},
}

var pixOrderNames = []enumName[PixOrder]{
	{PixOrderABCD, "ABCD"}, {PixOrderABDC, "ABDC"},
	{PixOrderACBD, "ACBD"}, {PixOrderACDB, "ACDB"},
	{PixOrderADBC, "ADBC"}, {PixOrderADCB, "ADCB"},
	{PixOrderBACD, "BACD"}, {PixOrderBADC, "BADC"},
	{PixOrderBCAD, "BCAD"}, {PixOrderBCDA, "BCDA"},
	{PixOrderBDAC, "BDAC"}, {PixOrderBDCA, "BDCA"},
	{PixOrderCABD, "CABD"}, {PixOrderCADB, "CADB"},
	{PixOrderCBAD, "CBAD"}, {PixOrderCBDA, "CBDA"},
	{PixOrderCDAB, "CDAB"}, {PixOrderCDBA, "CDBA"},
	{PixOrderDABC, "DABC"}, {PixOrderDACB, "DACB"},
	{PixOrderDBAC, "DBAC"}, {PixOrderDBCA, "DBCA"},
	{PixOrderDCAB, "DCAB"}, {PixOrderDCBA, "DCBA"},
}

var pixLayoutNames = []enumName[PixLayout]{
	{PixLayoutLinear, "LINEAR"},
	{PixLayoutHiSiTile64x16, "HISI_TILE_64x16"},
	{PixLayoutHiSiTile64x16Compressed, "HISI_TILE_64x16_COMPRESSED"},
}

var dataLayoutNames = []enumName[DataLayout]{
	{DataLayoutPacked, "PACKED"},
	{DataLayoutPlanar, "PLANAR"},
	{DataLayoutSemiPlanar, "SEMI_PLANAR"},
	{DataLayoutInterleaved, "INTERLEAVED"},
	{DataLayoutOpaque, "OPAQUE"},
}

func (p PixFormat) String() string {
	if s, ok := nameOf(pixFormatNames, p); ok {
		return s
	}
	return unknownName
}

// ParsePixFormat returns the pixel format named s, ignoring case.
func ParsePixFormat(s string) PixFormat { return valueOf(pixFormatNames, "pixel format", s) }

func (o PixOrder) String() string {
	if s, ok := nameOf(pixOrderNames, o); ok {
		return s
	}
	return unknownName
}

// ParsePixOrder returns the pixel order named s, ignoring case.
func ParsePixOrder(s string) PixOrder { return valueOf(pixOrderNames, "pixel order", s) }

func (l PixLayout) String() string {
	if s, ok := nameOf(pixLayoutNames, l); ok {
		return s
	}
	return unknownName
}

// ParsePixLayout returns the pixel layout named s, ignoring case.
func ParsePixLayout(s string) PixLayout { return valueOf(pixLayoutNames, "pixel layout", s) }

func (l DataLayout) String() string {
	if s, ok := nameOf(dataLayoutNames, l); ok {
		return s
	}
	return unknownName
}

// ParseDataLayout returns the data layout named s, ignoring case.
func ParseDataLayout(s string) DataLayout { return valueOf(dataLayoutNames, "data layout", s) }

// MarshalText implements encoding.TextMarshaler.
func (p PixFormat) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PixFormat) UnmarshalText(b []byte) error {
	*p = ParsePixFormat(string(b))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (o PixOrder) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *PixOrder) UnmarshalText(b []byte) error {
	*o = ParsePixOrder(string(b))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (l PixLayout) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *PixLayout) UnmarshalText(b []byte) error {
	*l = ParsePixLayout(string(b))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (l DataLayout) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *DataLayout) UnmarshalText(b []byte) error {
	*l = ParseDataLayout(string(b))
	return nil
}

const rawFormatFields = 8

// String returns the catalog name of f, or its
// PIXFMT/ORDER/LAYOUT/SIZE/DATALAYOUT/LOW|HIGH/LE|BE/DATASIZE form.
func (f RawFormat) String() string {
	if name, ok := defaultCatalog.RawFormatName(f); ok {
		return name
	}
	return f.Fields()
}

// Fields returns the eight field form of f, even when f has a catalog name.
func (f RawFormat) Fields() string {
	pad := "HIGH"
	if f.DataPadLow {
		pad = "LOW"
	}
	endianness := "BE"
	if f.DataLittleEndian {
		endianness = "LE"
	}
	return fmt.Sprintf("%s/%s/%s/%d/%s/%s/%s/%d",
		f.PixFormat, f.PixOrder, f.PixLayout, f.PixSize,
		f.DataLayout, pad, endianness, f.DataSize)
}

// ParseRawFormat parses a catalog name or the form produced by
// RawFormat.String.
func ParseRawFormat(s string) (RawFormat, error) {
	return defaultCatalog.ParseRawFormat(s)
}

// ParseRawFormat parses a name of c or the form produced by
// RawFormat.String.
func (c *Catalog) ParseRawFormat(s string) (RawFormat, error) {
	if f, ok := c.RawFormat(s); ok {
		return f, nil
	}

	tok := strings.Split(s, "/")
	if len(tok) != rawFormatFields {
		return RawFormat{}, fmt.Errorf("%w: raw format '%s'", ErrInvalidArgument, s)
	}
	pixSize, err := strconv.ParseUint(tok[3], 10, 32)
	if err != nil {
		return RawFormat{}, fmt.Errorf("%w: pixel size '%s'", ErrInvalidArgument, tok[3])
	}
	dataSize, err := strconv.ParseUint(tok[7], 10, 32)
	if err != nil {
		return RawFormat{}, fmt.Errorf("%w: data size '%s'", ErrInvalidArgument, tok[7])
	}

	return RawFormat{
		PixFormat:        ParsePixFormat(tok[0]),
		PixOrder:         ParsePixOrder(tok[1]),
		PixLayout:        ParsePixLayout(tok[2]),
		PixSize:          uint32(pixSize),
		DataLayout:       ParseDataLayout(tok[4]),
		DataPadLow:       strings.EqualFold(tok[5], "LOW"),
		DataLittleEndian: strings.EqualFold(tok[6], "LE"),
		DataSize:         uint32(dataSize),
	}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (f RawFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *RawFormat) UnmarshalText(b []byte) error {
	parsed, err := ParseRawFormat(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
