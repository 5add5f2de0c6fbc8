package v4l2

import (
	"sort"

	"github.com/blackjack/webcam"

	"github.com/pion/videodefs/pkg/frame"
	"github.com/pion/videodefs/pkg/prop"
)

// PixelFormat returns the raw format of a format reported by a device.
func PixelFormat(pf webcam.PixelFormat) (frame.RawFormat, error) {
	return RawFormat(FourCC(pf))
}

// BufferSize returns the size of the largest frame of fs.
func BufferSize(pf webcam.PixelFormat, fs webcam.FrameSize) (uint64, error) {
	return FrameSize(FourCC(pf), fs.MaxWidth, fs.MaxHeight)
}

// device is the part of *webcam.Webcam used to list capabilities.
type device interface {
	GetSupportedFormats() map[webcam.PixelFormat]string
	GetSupportedFrameSizes(webcam.PixelFormat) []webcam.FrameSize
}

// Capabilities lists the raw formats and frame sizes of the device at
// path, ordered by pixel format code. Compressed and unknown formats are
// skipped.
func Capabilities(path string) ([]prop.Video, error) {
	cam, err := webcam.Open(path)
	if err != nil {
		return nil, err
	}
	defer cam.Close()

	return capabilities(path, cam), nil
}

func capabilities(path string, d device) []prop.Video {
	formats := d.GetSupportedFormats()
	codes := make([]webcam.PixelFormat, 0, len(formats))
	for pf := range formats {
		codes = append(codes, pf)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	var caps []prop.Video
	for _, pf := range codes {
		f, err := PixelFormat(pf)
		if err != nil {
			logger.Debugf("%s: skipping %q: %v", path, formats[pf], err)
			continue
		}
		for _, fs := range d.GetSupportedFrameSizes(pf) {
			caps = append(caps, prop.Video{
				Width:       int(fs.MaxWidth),
				Height:      int(fs.MaxHeight),
				FrameFormat: f,
			})
		}
	}
	return caps
}
