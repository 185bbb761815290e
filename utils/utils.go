package utils

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// UInt32ToBytes converts an uint32 variable to byte array
// in little endian format
func UInt32ToBytes(num uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, num)
	return buf
}

// BytesToInt32 interprets the first 4 bytes of bs as a
// signed little endian int32.
func BytesToInt32(bs []byte) int32 {
	return int32(binary.LittleEndian.Uint32(bs[:4]))
}

// BoolToByte converts b to 1 if it is true, 0 otherwise.
func BoolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// WriteFile writes buf to a file whose path is indicated by filename.
func WriteFile(filename string, buf []byte, perm os.FileMode) error {
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("Can't write file. File '%s' already exists\n",
			filename)
	}

	if err := os.WriteFile(filename, buf, perm); err != nil {
		return err
	}
	return nil
}

// ResolvePath returns the absolute path of file.
// This will use other as a base path if file is just a file name.
func ResolvePath(file, other string) string {
	if !filepath.IsAbs(file) {
		file = filepath.Join(filepath.Dir(other), file)
	}
	return file
}
