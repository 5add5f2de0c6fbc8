package codec

import (
	"fmt"
	"math/rand"

	"github.com/pion/interceptor"
	"github.com/pion/rtp"
	"github.com/pion/rtp/codecs"
	"github.com/pion/webrtc/v4"

	"github.com/pion/videodefs/pkg/frame"
)

// DefaultMTU is the RTP packet size used when none is given.
const DefaultMTU = 1200

// Payloader returns the RTP payloader of f. H.264 input must be a byte
// stream or a single raw NAL unit.
func Payloader(f frame.CodedFormat) (rtp.Payloader, error) {
	switch f {
	case frame.H264ByteStream, frame.H264RawNALU:
		return &codecs.H264Payloader{}, nil
	}
	return nil, fmt.Errorf("%w: no payloader for %v", ErrUnsupported, f)
}

// Depacketizer returns a depacketizer producing frames of format f.
func Depacketizer(f frame.CodedFormat) (rtp.Depacketizer, error) {
	switch f {
	case frame.H264ByteStream:
		return &codecs.H264Packet{}, nil
	case frame.H264AVCC:
		return &codecs.H264Packet{IsAVC: true}, nil
	}
	return nil, fmt.Errorf("%w: no depacketizer for %v", ErrUnsupported, f)
}

// NewPacketizer returns a packetizer for frames of format f with a random
// SSRC and sequence start. mtu defaults to DefaultMTU when zero.
func NewPacketizer(f frame.CodedFormat, payloadType uint8, mtu uint16) (rtp.Packetizer, error) {
	c, err := RTPCodecCapability(f)
	if err != nil {
		return nil, err
	}
	p, err := Payloader(f)
	if err != nil {
		return nil, err
	}
	if mtu == 0 {
		mtu = DefaultMTU
	}
	return rtp.NewPacketizer(
		mtu,
		payloadType,
		rand.Uint32(),
		p,
		rtp.NewRandomSequencer(),
		c.ClockRate,
	), nil
}

// NewAPI returns a WebRTC API sending and receiving formats, with the
// default interceptors (NACK, RTCP reports, TWCC) registered.
func NewAPI(formats []frame.CodedFormat) (*webrtc.API, error) {
	m := &webrtc.MediaEngine{}
	if err := RegisterCodecs(m, formats); err != nil {
		return nil, err
	}

	i := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(m, i); err != nil {
		return nil, err
	}

	return webrtc.NewAPI(
		webrtc.WithMediaEngine(m),
		webrtc.WithInterceptorRegistry(i),
	), nil
}
