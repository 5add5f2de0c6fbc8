package frame

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type rawFormatYAML struct {
	PixFormat        PixFormat  `yaml:"pix_format"`
	PixOrder         PixOrder   `yaml:"pix_order"`
	PixLayout        PixLayout  `yaml:"pix_layout"`
	PixSize          uint32     `yaml:"pix_size"`
	DataLayout       DataLayout `yaml:"data_layout"`
	DataPadLow       bool       `yaml:"data_pad_low"`
	DataLittleEndian bool       `yaml:"data_little_endian"`
	DataSize         uint32     `yaml:"data_size"`
}

// UnmarshalYAML accepts a scalar parsed by ParseRawFormat or a mapping
// with the keys of the JSON form.
func (f *RawFormat) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return f.UnmarshalText([]byte(value.Value))
	}
	var v rawFormatYAML
	if err := value.Decode(&v); err != nil {
		return err
	}
	*f = RawFormat(v)
	return nil
}

type codedFormatYAML struct {
	Encoding   Encoding        `yaml:"encoding"`
	DataFormat CodedDataFormat `yaml:"data_format"`
}

// UnmarshalYAML accepts a scalar parsed by ParseCodedFormat or a mapping
// with the keys of the JSON form.
func (f *CodedFormat) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return f.UnmarshalText([]byte(value.Value))
	}
	var v codedFormatYAML
	if err := value.Decode(&v); err != nil {
		return err
	}
	*f = CodedFormat(v)
	return nil
}

// catalogFile is the document read by LoadCatalog:
//
//	raw:
//	  camera: nv21_hisi_tiled
//	  y10:
//	    pix_format: GRAY
//	    pix_order: ABCD
//	    pix_layout: LINEAR
//	    pix_size: 10
//	    data_layout: PACKED
//	    data_pad_low: false
//	    data_little_endian: true
//	    data_size: 16
//	coded:
//	  avc: h264_byte_stream
type catalogFile struct {
	Raw   map[string]RawFormat   `yaml:"raw"`
	Coded map[string]CodedFormat `yaml:"coded"`
}

// LoadCatalog reads a YAML document of named formats and returns the
// default catalog extended with them. Scalar entries refer to names of the
// default catalog or use the RawFormat.String form.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	return defaultCatalog.Load(r)
}

// Load is like LoadCatalog but extends c.
func (c *Catalog) Load(r io.Reader) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	out, err := c.With(doc.Raw, doc.Coded)
	if err != nil {
		return nil, err
	}
	logger.Debugf("loaded %d raw and %d coded formats", len(doc.Raw), len(doc.Coded))
	return out, nil
}
