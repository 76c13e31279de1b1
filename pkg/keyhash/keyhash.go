// Package keyhash maps keys to 64-bit hashes for shard selection.
package keyhash

import (
	"encoding/binary"
	"unsafe"

	"github.com/dchest/siphash"
	"github.com/pkg/errors"

	"github.com/snwfog/forwardlist/pkg/util"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// Identifier is implemented by keys that carry their own identity. Sum uses
// the identity as the hash.
type Identifier interface {
	Identity() uint64
}

// Sum hashes v. It panics if v is nil or of a type it does not support.
func Sum(v interface{}) uint64 {
	if util.IsNil(v) {
		panic(errors.New("keyhash: v cannot be nil"))
	}

	switch x := v.(type) {
	case Identifier:
		return x.Identity()
	case string:
		return String(x)
	case []byte:
		return Bytes(x)
	case int:
		return Uint64(uint64(x))
	case int8:
		return Uint64(uint64(x))
	case int16:
		return Uint64(uint64(x))
	case int32:
		return Uint64(uint64(x))
	case int64:
		return Uint64(uint64(x))
	case uint:
		return Uint64(uint64(x))
	case uint8:
		return Uint64(uint64(x))
	case uint16:
		return Uint64(uint64(x))
	case uint32:
		return Uint64(uint64(x))
	case uint64:
		return Uint64(x)
	case uintptr:
		return Uint64(uint64(x))
	}

	panic(errors.Errorf("keyhash: unsupported type %T", v))
}

func Bytes(b []byte) uint64 {
	return siphash.Hash(sipHashKey1, sipHashKey2, b)
}

// String hashes s without copying it.
func String(s string) uint64 {
	return Bytes(unsafe.Slice(unsafe.StringData(s), len(s)))
}

func Uint64(n uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return Bytes(buf[:])
}
