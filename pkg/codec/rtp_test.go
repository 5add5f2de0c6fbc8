package codec

import (
	"testing"

	"github.com/pion/webrtc/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/videodefs/pkg/frame"
)

var startCode = []byte{0x00, 0x00, 0x00, 0x01}

// idrNALU returns an IDR slice NAL unit free of start code emulation.
func idrNALU(size int) []byte {
	nalu := make([]byte, size)
	nalu[0] = 0x65
	for i := 1; i < size; i++ {
		nalu[i] = byte(i%250 + 1)
	}
	return nalu
}

func TestPacketizeRoundTrip(t *testing.T) {
	cases := map[string]struct {
		mtu     uint16
		size    int
		packets int
	}{
		"Single":     {0, 200, 1},
		"Fragmented": {100, 500, 6},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			nalu := idrNALU(c.size)
			annexB := append(append([]byte{}, startCode...), nalu...)

			p, err := NewPacketizer(frame.H264ByteStream, 96, c.mtu)
			require.NoError(t, err)
			pkts := p.Packetize(annexB, 3000)
			require.Len(t, pkts, c.packets)
			for _, pkt := range pkts {
				assert.Equal(t, uint8(96), pkt.PayloadType)
			}
			assert.True(t, pkts[len(pkts)-1].Marker)

			d, err := Depacketizer(frame.H264ByteStream)
			require.NoError(t, err)
			var out []byte
			for _, pkt := range pkts {
				b, err := d.Unmarshal(pkt.Payload)
				require.NoError(t, err)
				out = append(out, b...)
			}
			assert.Equal(t, annexB, out)
		})
	}
}

func TestDepacketizerAVCC(t *testing.T) {
	nalu := idrNALU(64)
	d, err := Depacketizer(frame.H264AVCC)
	require.NoError(t, err)

	out, err := d.Unmarshal(nalu)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0, 0, 0, 64}, nalu...), out)
}

func TestPayloaderUnsupported(t *testing.T) {
	_, err := Payloader(frame.H264AVCC)
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = Depacketizer(frame.H265ByteStream)
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = NewPacketizer(frame.H265ByteStream, 96, 0)
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = NewPacketizer(frame.JPEGJFIF, 96, 0)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestNewAPI(t *testing.T) {
	api, err := NewAPI([]frame.CodedFormat{frame.H264ByteStream, frame.H265HVCC})
	require.NoError(t, err)

	pc, err := api.NewPeerConnection(webrtc.Configuration{})
	require.NoError(t, err)
	_, err = pc.AddTransceiverFromKind(webrtc.RTPCodecTypeVideo)
	require.NoError(t, err)
	require.NoError(t, pc.Close())

	_, err = NewAPI([]frame.CodedFormat{{}})
	assert.ErrorIs(t, err, frame.ErrInvalidFormat)
}
