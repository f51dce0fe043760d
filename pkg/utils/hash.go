package utils

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"os"
)

// GenerateImageHash hashes the RGBA values of every pixel, so two renders of
// the same page compare equal regardless of PNG encoder settings.
func GenerateImageHash(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("nil image")
	}

	hasher := sha256.New()
	bounds := img.Bounds()
	var px [16]byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			binary.BigEndian.PutUint32(px[0:], r)
			binary.BigEndian.PutUint32(px[4:], g)
			binary.BigEndian.PutUint32(px[8:], b)
			binary.BigEndian.PutUint32(px[12:], a)
			hasher.Write(px[:])
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
