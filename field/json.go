// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package field

import (
	"os"
	"reflect"
	"unsafe"

	"github.com/SoftbearStudios/simplex/geom"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Make sure functions get run first
var json = func() jsoniter.API {
	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(geom.Angle(0)).String(), encodeAngle, emptyAngle)
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(geom.Angle(0)).String(), decodeAngle)

	return jsoniter.Config{
		IndentionStep:                 0,
		MarshalFloatWith6Digits:       true,
		EscapeHTML:                    false,
		SortMapKeys:                   true,
		UseNumber:                     false,
		DisallowUnknownFields:         true,
		TagKey:                        "json",
		OnlyTaggedField:               false,
		ValidateJsonRawMessage:        false,
		ObjectFieldMustBeSimpleString: true,
		CaseSensitive:                 true,
	}.Froze()
}()

// Decode parses a Config. Unknown fields are an error so typos don't go
// unnoticed.
func Decode(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "could not decode noise config")
	}
	return c, nil
}

// Load reads and decodes the Config at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "could not read noise config")
	}
	return Decode(data)
}

func (c Config) Encode() ([]byte, error) {
	data, err := json.Marshal(c)
	return data, errors.Wrap(err, "could not encode noise config")
}

// Angles are written as radians.
func encodeAngle(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	angle := *(*geom.Angle)(ptr)
	stream.WriteFloat32Lossy(angle.Float())
}

func emptyAngle(ptr unsafe.Pointer) bool {
	return *(*geom.Angle)(ptr) == 0
}

// Angles are read as a number of radians or a string such as "90deg".
func decodeAngle(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.WhatIsNext() == jsoniter.StringValue {
		angle, err := geom.ParseAngle(iter.ReadString())
		if err != nil {
			iter.ReportError("decode angle", err.Error())
			return
		}
		*(*geom.Angle)(ptr) = angle
		return
	}

	f := iter.ReadFloat32()
	*(*geom.Angle)(ptr) = geom.ToAngle(f)
}
