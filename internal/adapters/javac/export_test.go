package javac

import (
	"bytes"
	"encoding/binary"
)

// buildClassFile assembles a minimal class file with the given class constants.
func buildClassFile(self string, refs ...string) []byte {
	var pool bytes.Buffer
	count := 1
	addUtf8 := func(s string) int {
		pool.WriteByte(tagUtf8)
		_ = binary.Write(&pool, binary.BigEndian, uint16(len(s)))
		pool.WriteString(s)
		count++
		return count - 1
	}
	addClass := func(name string) int {
		idx := addUtf8(name)
		pool.WriteByte(tagClass)
		_ = binary.Write(&pool, binary.BigEndian, uint16(idx))
		count++
		return count - 1
	}

	thisIndex := addClass(self)
	for _, ref := range refs {
		addClass(ref)
	}

	var out bytes.Buffer
	_ = binary.Write(&out, binary.BigEndian, uint32(classMagic))
	_ = binary.Write(&out, binary.BigEndian, uint16(0))
	_ = binary.Write(&out, binary.BigEndian, uint16(52))
	_ = binary.Write(&out, binary.BigEndian, uint16(count))
	out.Write(pool.Bytes())
	_ = binary.Write(&out, binary.BigEndian, uint16(0x0021))
	_ = binary.Write(&out, binary.BigEndian, uint16(thisIndex))
	return out.Bytes()
}

// BuildClassFile exposes buildClassFile for external tests.
var BuildClassFile = buildClassFile

// NaturalCompare exposes naturalCompare for testing.
var NaturalCompare = naturalCompare

// NewRuntimeLocatorWithEnv creates a RuntimeLocator reading variables from getenv.
func NewRuntimeLocatorWithEnv(getenv func(string) string) *RuntimeLocator {
	return newRuntimeLocator(getenv)
}
