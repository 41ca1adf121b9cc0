package audio

// MPEG-1 Layer III, 128 kbit/s, 44.1 kHz, no padding, stereo
var silentFrameHeader = [4]byte{0xFF, 0xFB, 0x90, 0x00}

const (
	// SilentFrameSize is 144 * 128000 / 44100 rounded down
	SilentFrameSize = 417
	// samples per MPEG-1 Layer III frame
	samplesPerFrame = 1152
)

// SilentMP3 returns frames of zeroed MPEG audio. Each frame plays for 1152/44100 seconds.
func SilentMP3(frames int) []byte {
	if frames <= 0 {
		return nil
	}
	out := make([]byte, frames*SilentFrameSize)
	for i := 0; i < frames; i++ {
		copy(out[i*SilentFrameSize:], silentFrameHeader[:])
	}
	return out
}
