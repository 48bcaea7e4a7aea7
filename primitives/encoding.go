package primitives

import (
	"bytes"
	"encoding/binary"

	"github.com/BackendStack21/hsslms-compat-go/utils"
)

// structCodec packs integers the way a struct serializer does: each value is
// written through binary.Write as a fixed-size big-endian field.
type structCodec struct{}

func (structCodec) EncodeU32(v uint32) []byte { return pack(v, 4) }
func (structCodec) EncodeU16(v uint16) []byte { return pack(v, 2) }
func (structCodec) EncodeU8(v uint8) []byte   { return pack(v, 1) }

func (structCodec) DecodeU32(b []byte) (uint32, error) {
	var v uint32
	err := unpack(b, 4, &v)
	return v, err
}

func (structCodec) DecodeU16(b []byte) (uint16, error) {
	var v uint16
	err := unpack(b, 2, &v)
	return v, err
}

func (structCodec) DecodeU8(b []byte) (uint8, error) {
	var v uint8
	err := unpack(b, 1, &v)
	return v, err
}

func pack(v interface{}, size int) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, size))
	// Writes of fixed-size values to a bytes.Buffer cannot fail.
	_ = binary.Write(buf, binary.BigEndian, v)
	return buf.Bytes()
}

func unpack(b []byte, size int, v interface{}) error {
	if err := utils.CheckExactLength(b, size); err != nil {
		return err
	}
	return binary.Read(bytes.NewReader(b), binary.BigEndian, v)
}

// nativeCodec uses the byte-order helpers directly.
type nativeCodec struct{}

func (nativeCodec) EncodeU32(v uint32) []byte { return binary.BigEndian.AppendUint32(nil, v) }
func (nativeCodec) EncodeU16(v uint16) []byte { return binary.BigEndian.AppendUint16(nil, v) }
func (nativeCodec) EncodeU8(v uint8) []byte   { return []byte{v} }

func (nativeCodec) DecodeU32(b []byte) (uint32, error) {
	if err := utils.CheckExactLength(b, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (nativeCodec) DecodeU16(b []byte) (uint16, error) {
	if err := utils.CheckExactLength(b, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (nativeCodec) DecodeU8(b []byte) (uint8, error) {
	if err := utils.CheckExactLength(b, 1); err != nil {
		return 0, err
	}
	return b[0], nil
}
