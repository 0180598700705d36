// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// These constants are the values of the official opcodes used on the wire
// that this package needs to construct and parse output scripts. Data
// pushes between OP_DATA_1 and OP_DATA_75 are contiguous, so only the
// boundaries are named.
const (
	OpFalse     = 0x00 // OP_0
	OpData1     = 0x01
	OpData20    = 0x14
	OpData75    = 0x4b
	OpPushData1 = 0x4c
	OpPushData2 = 0x4d
	OpPushData4 = 0x4e
	Op1Negate   = 0x4f
	OpReserved  = 0x50
	OpTrue      = 0x51 // OP_1
	Op16        = 0x60

	OpReturn      = 0x6a
	OpDup         = 0x76
	OpEqual       = 0x87
	OpEqualVerify = 0x88
	OpHash160     = 0xa9
	OpCheckSig    = 0xac
)
