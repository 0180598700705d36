// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// appendVarintField appends a varint-typed field with the given number.
func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// appendBytesField appends a length-delimited field with the given number.
func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// appendStringField appends a length-delimited string field with the given
// number.
func appendStringField(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// consumeTag reads the next field tag from b.
func consumeTag(b []byte) (protowire.Number, protowire.Type, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, 0, 0, errors.Wrap(ErrMalformed, protowire.ParseError(n).Error())
	}
	return num, typ, n, nil
}

// consumeVarint reads a varint field value from b.
func consumeVarint(b []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, errors.Wrap(ErrMalformed, protowire.ParseError(n).Error())
	}
	return v, n, nil
}

// consumeBytes reads a length-delimited field value from b and returns a
// copy that does not alias the input. The copy is never nil, so a decoded
// present-but-empty field stays distinguishable from an absent one.
func consumeBytes(b []byte) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, errors.Wrap(ErrMalformed, protowire.ParseError(n).Error())
	}
	return append([]byte{}, v...), n, nil
}

// consumeString reads a length-delimited field value from b as a string.
func consumeString(b []byte) (string, int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, errors.Wrap(ErrMalformed, protowire.ParseError(n).Error())
	}
	return v, n, nil
}

// skipField skips over an unknown field's value, preserving forward
// compatibility with schema extensions.
func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, errors.Wrap(ErrMalformed, protowire.ParseError(n).Error())
	}
	return n, nil
}
