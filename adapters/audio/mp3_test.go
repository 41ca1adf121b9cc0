package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMP3Duration_Empty(t *testing.T) {
	_, err := MP3Duration(nil)
	assert.Error(t, err)
}

func TestMP3Duration_NotMP3(t *testing.T) {
	_, err := MP3Duration([]byte("definitely not an mp3 stream"))
	assert.Error(t, err)
}

func TestMP3Duration_SilentFrames(t *testing.T) {
	d, err := MP3Duration(SilentMP3(100))
	require.NoError(t, err)

	// 100 * 1152 / 44100 s
	assert.InDelta(t, float64(2612244897*time.Nanosecond), float64(d), float64(time.Millisecond))
	assert.Equal(t, int64(2612), d.Milliseconds())
}

func TestSilentMP3(t *testing.T) {
	data := SilentMP3(3)
	require.Len(t, data, 3*SilentFrameSize)
	for i := 0; i < 3; i++ {
		assert.Equal(t, []byte{0xFF, 0xFB, 0x90, 0x00}, data[i*SilentFrameSize:i*SilentFrameSize+4])
	}

	assert.Nil(t, SilentMP3(0))
}
