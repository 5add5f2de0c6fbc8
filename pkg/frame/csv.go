package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/videodefs/pkg/colorspace"
)

// CSV records are ';' separated key=value pairs, e.g.
//
//	resolution=1920x1080;framerate=30000/1001;sar=1:1;bit_depth=8

const (
	csvSeparator = ";"
	csvFormatKey = "format"
)

type csvField struct {
	key, value string
}

func splitCSV(s string) ([]csvField, error) {
	var fields []csvField
	for _, tok := range strings.Split(s, csvSeparator) {
		if tok == "" {
			continue
		}
		key, value, ok := strings.Cut(tok, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: malformed field '%s'", ErrInvalidArgument, tok)
		}
		fields = append(fields, csvField{strings.TrimSpace(key), strings.TrimSpace(value)})
	}
	return fields, nil
}

func joinCSV(fields []csvField) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(csvSeparator)
		}
		b.WriteString(f.key)
		b.WriteByte('=')
		b.WriteString(f.value)
	}
	return b.String()
}

func csvFormatValue(s string) (string, error) {
	fields, err := splitCSV(s)
	if err != nil {
		return "", err
	}
	for _, f := range fields {
		if f.key == csvFormatKey {
			return f.value, nil
		}
		logger.Warnf("ignoring unknown csv key '%s'", f.key)
	}
	return "", fmt.Errorf("%w: no '%s' key in '%s'", ErrInvalidArgument, csvFormatKey, s)
}

// CSV returns f as a "format=<name>" record.
func (f RawFormat) CSV() string {
	return joinCSV([]csvField{{csvFormatKey, f.String()}})
}

// ParseRawFormatCSV parses a record produced by RawFormat.CSV.
func ParseRawFormatCSV(s string) (RawFormat, error) {
	v, err := csvFormatValue(s)
	if err != nil {
		return RawFormat{}, err
	}
	return ParseRawFormat(v)
}

// CSV returns f as a "format=<name>" record.
func (f CodedFormat) CSV() string {
	return joinCSV([]csvField{{csvFormatKey, f.String()}})
}

// ParseCodedFormatCSV parses a record produced by CodedFormat.CSV.
func ParseCodedFormatCSV(s string) (CodedFormat, error) {
	v, err := csvFormatValue(s)
	if err != nil {
		return CodedFormat{}, err
	}
	return ParseCodedFormat(v)
}

func boolCSV(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// CSV returns the record of i. The mastering display colour volume and
// content light level are not part of it.
func (i FormatInfo) CSV() string {
	return joinCSV([]csvField{
		{"resolution", fmt.Sprintf("%dx%d", i.Resolution.Width, i.Resolution.Height)},
		{"framerate", fmt.Sprintf("%d/%d", i.Framerate.Num, i.Framerate.Den)},
		{"sar", fmt.Sprintf("%d:%d", i.SAR.Width, i.SAR.Height)},
		{"bit_depth", strconv.FormatUint(uint64(i.BitDepth), 10)},
		{"full_range", boolCSV(i.FullRange)},
		{"color_primaries", i.ColorPrimaries.String()},
		{"transfer_function", i.TransferFunction.String()},
		{"matrix_coefs", i.MatrixCoefs.String()},
		{"dynamic_range", i.DynamicRange.String()},
		{"tone_mapping", i.ToneMapping.String()},
	})
}

func parsePair(s, sep string) (uint32, uint32, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("'%s' is not of the form a%sb", s, sep)
	}
	x, err := strconv.ParseUint(a, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseUint(b, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	return uint32(x), uint32(y), nil
}

// ParseFormatInfoCSV parses a record produced by FormatInfo.CSV. Missing
// keys leave the matching fields zero; unknown keys are ignored.
func ParseFormatInfoCSV(s string) (FormatInfo, error) {
	var i FormatInfo

	fields, err := splitCSV(s)
	if err != nil {
		return i, err
	}
	for _, f := range fields {
		switch f.key {
		case "resolution":
			i.Resolution.Width, i.Resolution.Height, err = parsePair(f.value, "x")
		case "framerate":
			i.Framerate.Num, i.Framerate.Den, err = parsePair(f.value, "/")
		case "sar":
			i.SAR.Width, i.SAR.Height, err = parsePair(f.value, ":")
		case "bit_depth":
			var depth uint64
			depth, err = strconv.ParseUint(f.value, 10, 32)
			i.BitDepth = uint32(depth)
		case "full_range":
			i.FullRange, err = strconv.ParseBool(f.value)
		case "color_primaries":
			i.ColorPrimaries = colorspace.ParseColorPrimaries(f.value)
		case "transfer_function":
			i.TransferFunction = colorspace.ParseTransferFunction(f.value)
		case "matrix_coefs":
			i.MatrixCoefs = colorspace.ParseMatrixCoefs(f.value)
		case "dynamic_range":
			i.DynamicRange = colorspace.ParseDynamicRange(f.value)
		case "tone_mapping":
			i.ToneMapping = colorspace.ParseToneMapping(f.value)
		default:
			logger.Warnf("ignoring unknown csv key '%s'", f.key)
		}
		if err != nil {
			return FormatInfo{}, fmt.Errorf("%w: %s: %v", ErrInvalidArgument, f.key, err)
		}
	}
	return i, nil
}
