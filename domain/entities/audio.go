package entities

// AudioEncoding names the compressed codec requested from the provider
type AudioEncoding string

const (
	EncodingMP3 AudioEncoding = "MP3"
)

// MIMEType returns the content type served for the encoding
func (e AudioEncoding) MIMEType() string {
	switch e {
	case EncodingMP3:
		return "audio/mp3"
	default:
		return "application/octet-stream"
	}
}

// AudioConfig is the fixed output configuration of a synthesis call
type AudioConfig struct {
	Encoding     AudioEncoding `json:"encoding"`
	SpeakingRate float64       `json:"speaking_rate"`
}

// Audio is the synthesized speech returned by a provider
type Audio struct {
	Content  []byte
	Encoding AudioEncoding
}

// ContentType is the MIME type of the audio
func (a *Audio) ContentType() string {
	return a.Encoding.MIMEType()
}
