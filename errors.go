// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import "errors"

var (
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrReadDataFile is returned when data document file loading fails.
	ErrReadDataFile = errors.New("read data file")
	// ErrDecodeSchema is returned when schema JSON decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrDecodeData is returned when data document JSON decoding fails.
	ErrDecodeData = errors.New("decode data")
	// ErrSchemaRootType is returned when schema root is not a JSON object.
	ErrSchemaRootType = errors.New("schema root must be object")
	// ErrMalformedSchema is returned by strict parsing when property nodes lack a usable type.
	ErrMalformedSchema = errors.New("malformed schema")
	// ErrUnknownFormat is returned when requested page output format is not supported.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrUnknownDataFormat is returned when requested data panel encoding is not supported.
	ErrUnknownDataFormat = errors.New("unknown data format")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseTemplate is returned when built-in or custom template parsing fails.
	ErrParseTemplate = errors.New("parse template")
	// ErrExecuteTemplate is returned when page template execution fails.
	ErrExecuteTemplate = errors.New("execute template")
	// ErrWriteOutput is returned when rendered page cannot be written.
	ErrWriteOutput = errors.New("write output")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrEncodeExampleJSON is returned when generated example JSON encoding fails.
	ErrEncodeExampleJSON = errors.New("encode example json")
	// ErrEncodeExampleYAML is returned when generated example YAML encoding fails.
	ErrEncodeExampleYAML = errors.New("encode example yaml")
)
