package carrier_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lucipher/carrier"
	"github.com/katalvlaran/lucipher/cipher"
	"github.com/katalvlaran/lucipher/codec"
	"github.com/katalvlaran/lucipher/entropy"
	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/matrix"
)

func genKey(t *testing.T, n int, seed string) *carrier.Key {
	t.Helper()
	k, err := cipher.GenerateKey(field.F32, n, cipher.WithRand(entropy.Seeded([]byte(seed))))
	require.NoError(t, err)

	return k
}

// dominantKey is a unit key with off-diagonal entries 0.1; SOR converges on it.
func dominantKey(t *testing.T, n int) *carrier.Key {
	t.Helper()
	rows := make([][]field.Float32, n)
	for i := range rows {
		rows[i] = make([]field.Float32, n)
		for j := range rows[i] {
			rows[i][j] = 0.1
		}
		rows[i][i] = 1
	}
	raw, err := matrix.FromRows(field.F32, rows)
	require.NoError(t, err)
	k, err := cipher.NewKey(raw)
	require.NoError(t, err)

	return k
}

func TestTextFormat(t *testing.T) {
	t.Parallel()

	out, err := carrier.EncryptText(genKey(t, 4, "fmt"), []byte("test"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "8 "), "got %q", out)

	body := out[2:]
	require.Len(t, body, 8*8)
	for _, c := range body {
		require.True(t, c >= 'a' && c <= 'p', "letter %q", c)
	}
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		plain string
	}{
		{"test n4", 4, "test"},
		{"padding n7", 7, "hello, matrix cipher\n"},
		{"single byte n16", 16, "x"},
		{"binary", 5, "\x00\xff\x10\x7f"},
		{"empty", 3, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			key := genKey(t, tc.n, tc.name)
			enc, err := carrier.EncryptText(key, []byte(tc.plain))
			require.NoError(t, err)
			dec, err := carrier.DecryptText(key, enc, carrier.Direct)
			require.NoError(t, err)
			require.Equal(t, tc.plain, string(dec))
		})
	}
}

func TestTextIterative(t *testing.T) {
	t.Parallel()

	key := dominantKey(t, 4)
	enc, err := carrier.EncryptText(key, []byte("iterate me"))
	require.NoError(t, err)
	dec, err := carrier.DecryptText(key, append(enc, '\n'), carrier.Iterative(100, 1.3))
	require.NoError(t, err)
	require.Equal(t, "iterate me", string(dec))
}

func TestTextErrors(t *testing.T) {
	t.Parallel()

	key := genKey(t, 4, "err")
	_, err := carrier.DecryptText(key, []byte("no header"), carrier.Direct)
	require.ErrorIs(t, err, codec.ErrMissingHeader)

	_, err = carrier.DecryptText(key, []byte("8 abc"), carrier.Direct)
	require.ErrorIs(t, err, codec.ErrLetterCount)

	enc, err := carrier.EncryptText(key, []byte("test"))
	require.NoError(t, err)
	_, err = carrier.DecryptText(genKey(t, 3, "other"), enc, carrier.Direct)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestWrongKeyGarbles(t *testing.T) {
	t.Parallel()

	right := genKey(t, 4, "a")
	wrong := genKey(t, 4, "b")
	enc, err := carrier.EncryptText(right, []byte("test"))
	require.NoError(t, err)

	dec, err := carrier.DecryptText(wrong, enc, carrier.Direct)
	require.NoError(t, err)
	require.NotEqual(t, "test", string(dec))

	dec, err = carrier.DecryptText(right, enc, carrier.Direct)
	require.NoError(t, err)
	require.Equal(t, "test", string(dec))
}

func TestInvalidMethod(t *testing.T) {
	t.Parallel()

	key := dominantKey(t, 4)
	enc, err := carrier.EncryptText(key, []byte("test"))
	require.NoError(t, err)
	words, err := carrier.EncryptSamples(key, []int16{1, 2})
	require.NoError(t, err)

	tests := []struct {
		name   string
		method carrier.Method
	}{
		{"negative sweeps", carrier.Iterative(-1, 1.3)},
		{"omega above 2", carrier.Method{Iterative: true, Omega: 3}},
		{"omega exactly 2", carrier.Iterative(10, 2)},
		{"negative omega", carrier.Iterative(10, -0.5)},
		{"NaN omega", carrier.Iterative(10, math.NaN())},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.NotPanics(t, func() {
				_, err := carrier.DecryptText(key, enc, tc.method)
				require.ErrorIs(t, err, carrier.ErrInvalidMethod)
				_, err = carrier.DecryptSamples(key, words, tc.method)
				require.ErrorIs(t, err, carrier.ErrInvalidMethod)
			})
		})
	}

	// Zero omega selects the default, and a direct method ignores the fields.
	dec, err := carrier.DecryptText(key, enc, carrier.Method{Iterative: true, Iterations: 100})
	require.NoError(t, err)
	require.Equal(t, "test", string(dec))
	dec, err = carrier.DecryptText(key, enc, carrier.Method{Iterations: -5, Omega: 9})
	require.NoError(t, err)
	require.Equal(t, "test", string(dec))
}

func TestSamplesRoundTrip(t *testing.T) {
	t.Parallel()

	in := []int16{0, 1, -1, 32767, -32768, 1234, -4321}
	key := genKey(t, 6, "samples")
	enc, err := carrier.EncryptSamples(key, in)
	require.NoError(t, err)

	count, _, err := codec.ParseAudioHeader(enc)
	require.NoError(t, err)
	require.Equal(t, 4*len(in), count)
	require.Len(t, enc, 2+2*30) // 28 nibbles pad to 30 values

	dec, err := carrier.DecryptSamples(key, enc, carrier.Direct)
	require.NoError(t, err)
	require.Equal(t, in, dec)

	empty, err := carrier.EncryptSamples(key, nil)
	require.NoError(t, err)
	dec, err = carrier.DecryptSamples(key, empty, carrier.Direct)
	require.NoError(t, err)
	require.Empty(t, dec)
}

func TestMethodString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "direct", carrier.Direct.String())
	require.Equal(t, "iterative", carrier.Iterative(5, 0).String())
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, filepath.Join("dir", "song-encrypted.wav"), carrier.OutputPath(filepath.Join("dir", "song.wav"), "encrypted"))
	require.Equal(t, "a.b-decrypted.TXT", carrier.OutputPath("a.b.TXT", "decrypted"))
}

func TestWAVRejects8Bit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "eight.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	e := wav.NewEncoder(f, 8000, 8, 1, 1)
	require.NoError(t, e.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           []int{0, 64, 128, 255},
		SourceBitDepth: 8,
	}))
	require.NoError(t, e.Close())
	require.NoError(t, f.Close())

	_, _, err = carrier.ReadWAV(path)
	require.ErrorIs(t, err, carrier.ErrUnsupportedBitDepth)
}
