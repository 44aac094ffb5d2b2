package lif

import (
	"os"
	"path/filepath"
	"testing"
)

// A geometry small enough to build inputs by hand (12 byte images)
func tinyGeometry() Geometry {
	return Geometry{Width: 3, Height: 2, BytesPerPixel: 2, MaxValue: 4095}
}

// Bytes that can never be confused with the marker
func filler(length int, start byte) []byte {
	result := make([]byte, length)
	for i := range result {
		result[i] = 0xA0 + (start+byte(i))%0x40
	}
	return result
}

func concat(parts ...[]byte) []byte {
	result := make([]byte, 0)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}

func writeTestInput(t *testing.T, data []byte) string {
	path := filepath.Join(t.TempDir(), "input.lif")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Couldn't write test input: %s", err)
	}
	return path
}
