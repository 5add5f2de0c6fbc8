// Package codec maps coded frame formats to their WebRTC RTP codecs.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pion/webrtc/v4"

	"github.com/pion/videodefs/pkg/frame"
)

// ErrUnsupported is returned for coded formats that have no RTP mapping.
var ErrUnsupported = errors.New("codec: unsupported coded format")

const (
	videoClockRate = 90000

	// first dynamic payload type, RFC 3551
	dynamicPayloadType = 96
)

var videoRTCPFeedback = []webrtc.RTCPFeedback{
	{Type: "goog-remb"},
	{Type: "ccm", Parameter: "fir"},
	{Type: "nack"},
	{Type: "nack", Parameter: "pli"},
}

var rtpCapabilities = map[frame.Encoding]webrtc.RTPCodecCapability{
	frame.EncodingH264: {
		MimeType:     webrtc.MimeTypeH264,
		ClockRate:    videoClockRate,
		SDPFmtpLine:  "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f",
		RTCPFeedback: videoRTCPFeedback,
	},
	frame.EncodingH265: {
		MimeType:     webrtc.MimeTypeH265,
		ClockRate:    videoClockRate,
		RTCPFeedback: videoRTCPFeedback,
	},
}

// RTPCodecCapability returns the RTP codec carrying f. The data format
// only has to be valid for the encoding: RTP payloads are always raw NAL
// units.
func RTPCodecCapability(f frame.CodedFormat) (webrtc.RTPCodecCapability, error) {
	if !f.IsValid() {
		return webrtc.RTPCodecCapability{}, fmt.Errorf("%w: %v", frame.ErrInvalidFormat, f)
	}
	c, ok := rtpCapabilities[f.Encoding]
	if !ok {
		return webrtc.RTPCodecCapability{}, fmt.Errorf("%w: %v", ErrUnsupported, f)
	}
	c.RTCPFeedback = append([]webrtc.RTCPFeedback(nil), c.RTCPFeedback...)
	return c, nil
}

// CodedFormatFromMimeType returns the coded format depacketized RTP
// payloads of mimeType are delivered in. Both RTP ("video/H264") and
// container ("video/avc") MIME types are accepted, ignoring case.
func CodedFormatFromMimeType(mimeType string) (frame.CodedFormat, error) {
	for e, c := range rtpCapabilities {
		if strings.EqualFold(mimeType, c.MimeType) || strings.EqualFold(mimeType, e.MimeType()) {
			return frame.CodedFormat{Encoding: e, DataFormat: frame.CodedDataFormatByteStream}, nil
		}
	}
	if strings.EqualFold(mimeType, frame.EncodingJPEG.MimeType()) {
		return frame.JPEGJFIF, nil
	}
	return frame.CodedFormat{}, fmt.Errorf("%w: %q", ErrUnsupported, mimeType)
}

// RegisterCodecs registers an RTP video codec per encoding in formats
// with m, using consecutive dynamic payload types.
func RegisterCodecs(m *webrtc.MediaEngine, formats []frame.CodedFormat) error {
	seen := map[frame.Encoding]bool{}
	pt := webrtc.PayloadType(dynamicPayloadType)
	for _, f := range formats {
		if seen[f.Encoding] {
			continue
		}
		c, err := RTPCodecCapability(f)
		if err != nil {
			return err
		}
		params := webrtc.RTPCodecParameters{RTPCodecCapability: c, PayloadType: pt}
		if err := m.RegisterCodec(params, webrtc.RTPCodecTypeVideo); err != nil {
			return err
		}
		seen[f.Encoding] = true
		pt++
	}
	return nil
}
