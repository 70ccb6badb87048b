// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/PawCoin/PawCoinMN/types/chainhash"
)

// Uint32Time is a unix timestamp carried as a uint32 on the wire.  Block
// headers, transactions and peer addresses all encode their time this way,
// which limits them to 2106.
type Uint32Time time.Time

// ReadElement decodes the little endian representation of the value element
// points to.  Only the field types of transactions, block headers and peer
// addresses are supported.
func ReadElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *int32:
		rv, err := BinarySerializer.Uint32(r, littleEndian)
		*e = int32(rv)
		return err

	case *uint32:
		rv, err := BinarySerializer.Uint32(r, littleEndian)
		*e = rv
		return err

	case *int64:
		rv, err := BinarySerializer.Uint64(r, littleEndian)
		*e = int64(rv)
		return err

	case *Uint32Time:
		rv, err := BinarySerializer.Uint32(r, littleEndian)
		if err != nil {
			return err
		}
		*e = Uint32Time(time.Unix(int64(rv), 0))
		return nil

	case *ServiceFlag:
		rv, err := BinarySerializer.Uint64(r, littleEndian)
		*e = ServiceFlag(rv)
		return err

	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err

	case *[16]byte:
		_, err := io.ReadFull(r, e[:])
		return err
	}

	return Error("ReadElement", fmt.Sprintf("unsupported element type %T", element))
}

// ReadElements reads multiple items from r in order.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		if err := ReadElement(r, element); err != nil {
			return err
		}
	}
	return nil
}

// WriteElement writes the little endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case int32:
		return BinarySerializer.PutUint32(w, littleEndian, uint32(e))

	case uint32:
		return BinarySerializer.PutUint32(w, littleEndian, e)

	case int64:
		return BinarySerializer.PutUint64(w, littleEndian, uint64(e))

	case Uint32Time:
		return BinarySerializer.PutUint32(w, littleEndian, uint32(time.Time(e).Unix()))

	case ServiceFlag:
		return BinarySerializer.PutUint64(w, littleEndian, uint64(e))

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err

	case [16]byte:
		_, err := w.Write(e[:])
		return err
	}

	return Error("WriteElement", fmt.Sprintf("unsupported element type %T", element))
}

// WriteElements writes multiple items to w in order.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		if err := WriteElement(w, element); err != nil {
			return err
		}
	}
	return nil
}

// varIntWidths maps a varint discriminant to the width of the value that
// follows it and the smallest value the width may carry.
var varIntWidths = map[uint8]struct {
	size int
	min  uint64
}{
	0xfd: {2, 0xfd},
	0xfe: {4, 0x10000},
	0xff: {8, 0x100000000},
}

// ReadVarInt reads a compact size integer from r.  Values that could have
// been encoded in fewer bytes are rejected.
func ReadVarInt(r io.Reader) (uint64, error) {
	discriminant, err := BinarySerializer.Uint8(r)
	if err != nil {
		return 0, err
	}

	width, ok := varIntWidths[discriminant]
	if !ok {
		return uint64(discriminant), nil
	}

	var rv uint64
	switch width.size {
	case 2:
		v, err := BinarySerializer.Uint16(r, littleEndian)
		if err != nil {
			return 0, err
		}
		rv = uint64(v)
	case 4:
		v, err := BinarySerializer.Uint32(r, littleEndian)
		if err != nil {
			return 0, err
		}
		rv = uint64(v)
	default:
		rv, err = BinarySerializer.Uint64(r, littleEndian)
		if err != nil {
			return 0, err
		}
	}

	if rv < width.min {
		return 0, Error("ReadVarInt", fmt.Sprintf(
			errNonCanonicalVarInt, rv, discriminant, width.min))
	}
	return rv, nil
}

// WriteVarInt writes val to w as a compact size integer.
func WriteVarInt(w io.Writer, val uint64) error {
	switch {
	case val < 0xfd:
		return BinarySerializer.PutUint8(w, uint8(val))

	case val <= math.MaxUint16:
		if err := BinarySerializer.PutUint8(w, 0xfd); err != nil {
			return err
		}
		return BinarySerializer.PutUint16(w, littleEndian, uint16(val))

	case val <= math.MaxUint32:
		if err := BinarySerializer.PutUint8(w, 0xfe); err != nil {
			return err
		}
		return BinarySerializer.PutUint32(w, littleEndian, uint32(val))
	}

	if err := BinarySerializer.PutUint8(w, 0xff); err != nil {
		return err
	}
	return BinarySerializer.PutUint64(w, littleEndian, val)
}

// VarIntSerializeSize returns the encoded size of val as a compact size
// integer.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= math.MaxUint16:
		return 3
	case val <= math.MaxUint32:
		return 5
	}
	return 9
}

// ReadVarBytes reads a length prefixed byte slice of at most maxAllowed
// bytes.  fieldName only appears in the error.
func ReadVarBytes(r io.Reader, maxAllowed uint32, fieldName string) ([]byte, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	if count > uint64(maxAllowed) {
		str := fmt.Sprintf("%s is larger than the max allowed size "+
			"[count %d, max %d]", fieldName, count, maxAllowed)
		return nil, Error("ReadVarBytes", str)
	}

	b := make([]byte, count)
	if _, err = io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarBytes writes b to w prefixed by its length.
func WriteVarBytes(w io.Writer, b []byte) error {
	if err := WriteVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}
