package lif

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
)

// Produce an md5 string from given data (a simple shortcut)
func Md5String(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

func hashString(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
