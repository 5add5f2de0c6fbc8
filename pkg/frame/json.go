package frame

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pion/videodefs/pkg/colorspace"
)

type rawFormatJSON struct {
	PixFormat        PixFormat  `json:"pix_format"`
	PixOrder         PixOrder   `json:"pix_order"`
	PixLayout        PixLayout  `json:"pix_layout"`
	PixSize          uint32     `json:"pix_size"`
	DataLayout       DataLayout `json:"data_layout"`
	DataPadLow       bool       `json:"data_pad_low"`
	DataLittleEndian bool       `json:"data_little_endian"`
	DataSize         uint32     `json:"data_size"`
}

// MarshalJSON encodes f as an object holding every field.
func (f RawFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(rawFormatJSON(f))
}

// UnmarshalJSON decodes an object produced by MarshalJSON, or a string
// accepted by ParseRawFormat.
func (f *RawFormat) UnmarshalJSON(b []byte) error {
	if isJSONString(b) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return f.UnmarshalText([]byte(s))
	}
	var v rawFormatJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = RawFormat(v)
	return nil
}

type codedFormatJSON struct {
	Encoding   Encoding        `json:"encoding"`
	DataFormat CodedDataFormat `json:"data_format"`
}

// MarshalJSON encodes f as an object holding every field.
func (f CodedFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(codedFormatJSON(f))
}

// UnmarshalJSON decodes an object produced by MarshalJSON, or a string
// accepted by ParseCodedFormat.
func (f *CodedFormat) UnmarshalJSON(b []byte) error {
	if isJSONString(b) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return f.UnmarshalText([]byte(s))
	}
	var v codedFormatJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = CodedFormat(v)
	return nil
}

func isJSONString(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '"'
}

type mdcvJSON struct {
	DisplayPrimaries             colorspace.ColorPrimaries `json:"display_primaries"`
	ColorPrimaries               []colorspace.Chromaticity `json:"color_primaries,omitempty"`
	WhitePoint                   *colorspace.Chromaticity  `json:"white_point,omitempty"`
	MaxDisplayMasteringLuminance float32                   `json:"max_display_mastering_luminance"`
	MinDisplayMasteringLuminance float32                   `json:"min_display_mastering_luminance"`
}

// MarshalJSON encodes m with its primaries name; the chromaticities are
// only written when they match no known primaries.
func (m MDCV) MarshalJSON() ([]byte, error) {
	v := mdcvJSON{
		DisplayPrimaries:             m.Primaries(),
		MaxDisplayMasteringLuminance: m.MaxDisplayMasteringLuminance,
		MinDisplayMasteringLuminance: m.MinDisplayMasteringLuminance,
	}
	if v.DisplayPrimaries == colorspace.ColorPrimariesUnknown {
		p := m.DisplayPrimariesValue
		v.ColorPrimaries = []colorspace.Chromaticity{p.Green, p.Blue, p.Red}
		v.WhitePoint = &p.WhitePoint
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes an object produced by MarshalJSON.
func (m *MDCV) UnmarshalJSON(b []byte) error {
	var v mdcvJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = MDCV{
		DisplayPrimaries:             v.DisplayPrimaries,
		MaxDisplayMasteringLuminance: v.MaxDisplayMasteringLuminance,
		MinDisplayMasteringLuminance: v.MinDisplayMasteringLuminance,
	}
	switch {
	case v.DisplayPrimaries != colorspace.ColorPrimariesUnknown:
		m.DisplayPrimariesValue = v.DisplayPrimaries.Value()
	case len(v.ColorPrimaries) == 3 && v.WhitePoint != nil:
		m.DisplayPrimariesValue = colorspace.PrimariesValue{
			Green:      v.ColorPrimaries[0],
			Blue:       v.ColorPrimaries[1],
			Red:        v.ColorPrimaries[2],
			WhitePoint: *v.WhitePoint,
		}
	case len(v.ColorPrimaries) != 0:
		return fmt.Errorf("%w: mdcv needs 3 color primaries and a white point", ErrInvalidArgument)
	}
	return nil
}

type formatInfoJSON struct {
	Framerate Frac `json:"framerate"`
	Color
	Resolution Dim   `json:"resolution"`
	SAR        Dim   `json:"sar"`
	MDCV       *MDCV `json:"mdcv,omitempty"`
	CLL        *CLL  `json:"cll,omitempty"`
}

// MarshalJSON encodes i; the mastering display colour volume and content
// light level are only written when set.
func (i FormatInfo) MarshalJSON() ([]byte, error) {
	v := formatInfoJSON{
		Framerate:  i.Framerate,
		Color:      i.Color,
		Resolution: i.Resolution,
		SAR:        i.SAR,
	}
	if i.MDCV.IsSet() {
		v.MDCV = &i.MDCV
	}
	if i.CLL.IsSet() {
		v.CLL = &i.CLL
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes an object produced by MarshalJSON.
func (i *FormatInfo) UnmarshalJSON(b []byte) error {
	var v formatInfoJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*i = FormatInfo{
		Framerate:  v.Framerate,
		Color:      v.Color,
		Resolution: v.Resolution,
		SAR:        v.SAR,
	}
	if v.MDCV != nil {
		i.MDCV = *v.MDCV
	}
	if v.CLL != nil {
		i.CLL = *v.CLL
	}
	return nil
}

type frameInfoMinJSON struct {
	Timestamp        uint64 `json:"timestamp"`
	Timescale        uint32 `json:"timescale"`
	CaptureTimestamp uint64 `json:"capture_timestamp"`
	Index            uint32 `json:"index"`
	Flags            uint64 `json:"flags"`
}

type frameInfoJSON struct {
	frameInfoMinJSON
	Color
	Resolution Dim `json:"resolution"`
	SAR        Dim `json:"sar"`
}

// JSON encodes i. With min, only the timing, index and flags are written.
func (i FrameInfo) JSON(min bool) ([]byte, error) {
	m := frameInfoMinJSON{
		Timestamp:        i.Timestamp,
		Timescale:        i.Timescale,
		CaptureTimestamp: i.CaptureTimestamp,
		Index:            i.Index,
		Flags:            uint64(i.Flags),
	}
	if min {
		return json.Marshal(m)
	}
	return json.Marshal(frameInfoJSON{
		frameInfoMinJSON: m,
		Color:            i.Color,
		Resolution:       i.Resolution,
		SAR:              i.SAR,
	})
}

// MarshalJSON encodes every field of i.
func (i FrameInfo) MarshalJSON() ([]byte, error) {
	return i.JSON(false)
}

// UnmarshalJSON decodes an object produced by JSON, minimal or not.
func (i *FrameInfo) UnmarshalJSON(b []byte) error {
	var v frameInfoJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*i = FrameInfo{
		Timestamp:        v.Timestamp,
		Timescale:        v.Timescale,
		CaptureTimestamp: v.CaptureTimestamp,
		Index:            v.Index,
		Flags:            FrameFlag(v.Flags),
		Color:            v.Color,
		Resolution:       v.Resolution,
		SAR:              v.SAR,
	}
	return nil
}
