// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// PushedData returns the data pushed by the script in order.  Small integer
// opcodes push their numeric value.  Opcodes that push nothing are skipped.
func PushedData(script []byte) ([][]byte, error) {
	var data [][]byte
	err := walkScript(script, func(op byte, push []byte) {
		if push != nil {
			data = append(data, push)
		}
	})
	return data, err
}

// DisasmString formats the script as a one-line disassembly: data pushes as
// hex, other opcodes by name.
func DisasmString(script []byte) (string, error) {
	var parts []string
	err := walkScript(script, func(op byte, push []byte) {
		switch {
		case op == OP_0:
			parts = append(parts, "0")
		case op > OP_0 && op <= OP_PUSHDATA4:
			parts = append(parts, hex.EncodeToString(push))
		case op == OP_1NEGATE:
			parts = append(parts, "-1")
		default:
			parts = append(parts, opcodeName(op))
		}
	})
	return strings.Join(parts, " "), err
}

// walkScript calls fn for each opcode in script.  push is the data pushed by
// data push opcodes and nil for the rest.
func walkScript(script []byte, fn func(op byte, push []byte)) error {
	for i := 0; i < len(script); {
		op := script[i]
		i++

		var size int
		switch {
		case op == OP_0:
			fn(op, []byte{})
			continue
		case op >= OP_DATA_1 && op <= OP_DATA_75:
			size = int(op)
		case op == OP_PUSHDATA1:
			if i+1 > len(script) {
				return malformed(op, i)
			}
			size = int(script[i])
			i++
		case op == OP_PUSHDATA2:
			if i+2 > len(script) {
				return malformed(op, i)
			}
			size = int(binary.LittleEndian.Uint16(script[i:]))
			i += 2
		case op == OP_PUSHDATA4:
			if i+4 > len(script) {
				return malformed(op, i)
			}
			size = int(binary.LittleEndian.Uint32(script[i:]))
			i += 4
		case op >= OP_1 && op <= OP_16:
			fn(op, []byte{op - (OP_1 - 1)})
			continue
		default:
			fn(op, nil)
			continue
		}

		if size < 0 || i+size > len(script) {
			return malformed(op, i)
		}
		fn(op, script[i:i+size])
		i += size
	}
	return nil
}

func malformed(op byte, offset int) error {
	return fmt.Errorf("opcode %s at offset %d requires more bytes than the script has",
		opcodeName(op), offset-1)
}
