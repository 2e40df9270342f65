package carrier

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	extText  = ".txt"
	extAudio = ".wav"

	suffixEncrypted = "encrypted"
	suffixDecrypted = "decrypted"
)

// OutputPath returns "<stem>-<suffix><ext>" next to path.
func OutputPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + suffix + ext
}

// EncryptFile encrypts a .txt or .wav file and writes "<stem>-encrypted<ext>".
// It returns the output path.
func EncryptFile(key *Key, path string) (string, error) {
	out := OutputPath(path, suffixEncrypted)
	start := time.Now()

	switch strings.ToLower(filepath.Ext(path)) {
	case extText:
		plain, err := os.ReadFile(path)
		if err != nil {
			return "", ioErrorf(err)
		}
		framed, err := EncryptText(key, plain)
		if err != nil {
			return "", err
		}
		if err = os.WriteFile(out, framed, 0o644); err != nil {
			return "", ioErrorf(err)
		}
	case extAudio:
		samples, format, err := ReadWAV(path)
		if err != nil {
			return "", err
		}
		words, err := EncryptSamples(key, samples)
		if err != nil {
			return "", err
		}
		if err = WriteWAV(out, format, words); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedExtension)
	}
	log.Infof("encrypted %s -> %s in %s", path, out, time.Since(start))

	return out, nil
}

// DecryptFile decrypts a file produced by EncryptFile and writes
// "<stem>-decrypted<ext>". It returns the output path.
func DecryptFile(key *Key, path string, method Method) (string, error) {
	out := OutputPath(path, suffixDecrypted)
	start := time.Now()

	switch strings.ToLower(filepath.Ext(path)) {
	case extText:
		framed, err := os.ReadFile(path)
		if err != nil {
			return "", ioErrorf(err)
		}
		plain, err := DecryptText(key, framed, method)
		if err != nil {
			return "", err
		}
		if err = os.WriteFile(out, plain, 0o644); err != nil {
			return "", ioErrorf(err)
		}
	case extAudio:
		words, format, err := ReadWAV(path)
		if err != nil {
			return "", err
		}
		samples, err := DecryptSamples(key, words, method)
		if err != nil {
			return "", err
		}
		if err = WriteWAV(out, format, samples); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedExtension)
	}
	log.Infof("%s decrypted %s -> %s in %s", method, path, out, time.Since(start))

	return out, nil
}
