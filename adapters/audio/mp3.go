package audio

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

// go-mp3 always decodes to 16-bit little endian stereo
const bytesPerFrame = 4

// MP3Duration decodes the MP3 frame headers and returns the playback length
func MP3Duration(data []byte) (time.Duration, error) {
	if len(data) == 0 {
		return 0, errors.New("empty mp3 data")
	}

	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to decode mp3: %w", err)
	}

	sampleRate := decoder.SampleRate()
	length := decoder.Length()
	if sampleRate <= 0 || length < 0 {
		return 0, errors.New("mp3 length is unknown")
	}

	frames := length / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(sampleRate), nil
}
