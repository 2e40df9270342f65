package carrier

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/katalvlaran/lucipher/codec"
)

const pcmBitDepth = 16

// Format is the container metadata carried from the source file to the output.
type Format struct {
	SampleRate  int
	NumChannels int
	AudioFormat int
}

// EncryptSamples encrypts 16-bit samples into a two-word count followed by
// two words per encrypted value.
func EncryptSamples(key *Key, samples []int16) ([]int16, error) {
	nibbles := codec.SplitSamples(samples)
	if len(nibbles) == 0 {
		return codec.PutAudioHeader(0, nil), nil
	}
	bits, err := encryptNibbles(key, nibbles)
	if err != nil {
		return nil, err
	}

	return codec.PutAudioHeader(len(nibbles), codec.BitsToWords(bits)), nil
}

// DecryptSamples reverses EncryptSamples.
//
// Errors:
//   - codec.ErrMissingHeader, codec.ErrWordCount for a malformed stream.
//   - ErrInvalidMethod, matrix.ErrDimensionMismatch, codec.ErrHeaderLength
//     as for DecryptText.
func DecryptSamples(key *Key, words []int16, method Method) ([]int16, error) {
	count, body, err := codec.ParseAudioHeader(words)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []int16{}, nil
	}
	bits, err := codec.WordsToBits(body)
	if err != nil {
		return nil, err
	}
	nibbles, err := decryptBits(key, bits, count, method)
	if err != nil {
		return nil, err
	}

	return codec.JoinSamples(nibbles)
}

// ReadWAV loads a 16-bit PCM WAV file.
//
// Errors: ErrIO, ErrInvalidWAV, ErrUnsupportedBitDepth.
func ReadWAV(path string) ([]int16, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Format{}, ioErrorf(err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, Format{}, fmt.Errorf("%s: %w", path, ErrInvalidWAV)
	}
	if d.BitDepth != pcmBitDepth {
		return nil, Format{}, fmt.Errorf("%s: %d-bit: %w", path, d.BitDepth, ErrUnsupportedBitDepth)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, Format{}, fmt.Errorf("%s: %w: %w", path, ErrInvalidWAV, err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	format := Format{
		SampleRate:  int(d.SampleRate),
		NumChannels: int(d.NumChans),
		AudioFormat: int(d.WavAudioFormat),
	}
	log.Debugf("read %s: %d samples, %d Hz, %d ch", path, len(samples), format.SampleRate, format.NumChannels)

	return samples, format, nil
}

// WriteWAV stores samples as 16-bit PCM with the given container metadata.
func WriteWAV(path string, format Format, samples []int16) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(cerr)
		}
	}()

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: format.NumChannels, SampleRate: format.SampleRate},
		Data:           data,
		SourceBitDepth: pcmBitDepth,
	}

	e := wav.NewEncoder(f, format.SampleRate, pcmBitDepth, format.NumChannels, format.AudioFormat)
	if err = e.Write(buf); err != nil {
		return ioErrorf(err)
	}
	if err = e.Close(); err != nil {
		return ioErrorf(err)
	}

	return nil
}
