// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"
)

// ErrMalformedScript is returned by CheckScript when a script cannot be
// parsed, typically because a data push declares more bytes than remain in
// the script. Use errors.Is to detect it under wrapping.
var ErrMalformedScript = errors.New("malformed script")

// CheckScript checks that the passed script parses: every data push must
// be complete and every opcode must be well-formed. It performs no
// execution and makes no judgement about whether the script is standard
// or spendable.
func CheckScript(script []byte) error {
	for i := 0; i < len(script); {
		op := script[i]
		i++

		// Non-push opcodes occupy a single byte.
		if op > OpPushData4 {
			continue
		}
		if op == OpFalse {
			continue
		}

		var dataLen int
		switch op {
		case OpPushData1:
			if len(script)-i < 1 {
				return errors.Wrapf(ErrMalformedScript,
					"OP_PUSHDATA1 at offset %d is missing its length byte", i-1)
			}
			dataLen = int(script[i])
			i++
		case OpPushData2:
			if len(script)-i < 2 {
				return errors.Wrapf(ErrMalformedScript,
					"OP_PUSHDATA2 at offset %d is missing its length bytes", i-1)
			}
			dataLen = int(script[i]) | int(script[i+1])<<8
			i += 2
		case OpPushData4:
			if len(script)-i < 4 {
				return errors.Wrapf(ErrMalformedScript,
					"OP_PUSHDATA4 at offset %d is missing its length bytes", i-1)
			}
			dataLen = int(script[i]) | int(script[i+1])<<8 |
				int(script[i+2])<<16 | int(script[i+3])<<24
			if dataLen < 0 {
				return errors.Wrapf(ErrMalformedScript,
					"OP_PUSHDATA4 at offset %d declares negative length", i-1)
			}
			i += 4
		default:
			// OP_DATA_1 through OP_DATA_75 push the opcode's own
			// value in bytes.
			dataLen = int(op)
		}

		if len(script)-i < dataLen {
			return errors.Wrapf(ErrMalformedScript,
				"opcode 0x%02x declares %d bytes but only %d remain",
				op, dataLen, len(script)-i)
		}
		i += dataLen
	}

	return nil
}
