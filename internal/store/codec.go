package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/riordanpawley/storyboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// Codec converts a DBState to and from its stored bytes
type Codec interface {
	Name() string
	Marshal(state *domain.DBState) ([]byte, error)
	Unmarshal(data []byte, state *domain.DBState) error
}

// Codec and compression names
const (
	CodecJSON = "json"
	CodecYAML = "yaml"
	CodecCBOR = "cbor"

	CompressionNone = "none"
	CompressionZstd = "zstd"
	CompressionLZ4  = "lz4"
)

var errEmptyDocument = errors.New("empty document")

// NewCodec builds the codec named by format, optionally wrapped in a
// compression layer. Empty names select json without compression.
func NewCodec(format, compression string) (Codec, error) {
	var codec Codec
	switch format {
	case CodecJSON, "":
		codec = jsonCodec{}
	case CodecYAML:
		codec = yamlCodec{}
	case CodecCBOR:
		c, err := newCBORCodec()
		if err != nil {
			return nil, err
		}
		codec = c
	default:
		return nil, fmt.Errorf("unknown codec: %s (supported: json, yaml, cbor)", format)
	}

	switch compression {
	case CompressionNone, "":
		return codec, nil
	case CompressionZstd, CompressionLZ4:
		return compressedCodec{inner: codec, algorithm: compression}, nil
	default:
		return nil, fmt.Errorf("unknown compression: %s (supported: none, zstd, lz4)", compression)
	}
}

// jsonCodec writes the canonical on-disk format:
// {"last_item_id":N,"epics":{"<id>":{...}},"stories":{"<id>":{...}}}
type jsonCodec struct{}

func (jsonCodec) Name() string { return CodecJSON }

func (jsonCodec) Marshal(state *domain.DBState) ([]byte, error) {
	return json.Marshal(state)
}

func (jsonCodec) Unmarshal(data []byte, state *domain.DBState) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errEmptyDocument
	}
	return json.Unmarshal(data, state)
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return CodecYAML }

func (yamlCodec) Marshal(state *domain.DBState) ([]byte, error) {
	return yaml.Marshal(state)
}

func (yamlCodec) Unmarshal(data []byte, state *domain.DBState) error {
	// yaml.v3 accepts an empty document as a zero value
	if len(bytes.TrimSpace(data)) == 0 {
		return errEmptyDocument
	}
	return yaml.Unmarshal(data, state)
}

// cborCodec uses Core Deterministic Encoding so the same state always
// produces the same bytes. Field names come from the json tags.
type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func newCBORCodec() (cborCodec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return cborCodec{}, fmt.Errorf("cbor encoder: %w", err)
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return cborCodec{}, fmt.Errorf("cbor decoder: %w", err)
	}
	return cborCodec{enc: enc, dec: dec}, nil
}

func (cborCodec) Name() string { return CodecCBOR }

func (c cborCodec) Marshal(state *domain.DBState) ([]byte, error) {
	return c.enc.Marshal(state)
}

func (c cborCodec) Unmarshal(data []byte, state *domain.DBState) error {
	if len(data) == 0 {
		return errEmptyDocument
	}
	return c.dec.Unmarshal(data, state)
}

// compressedCodec wraps another codec's bytes in zstd or lz4 framing
type compressedCodec struct {
	inner     Codec
	algorithm string
}

func (c compressedCodec) Name() string { return c.inner.Name() + "+" + c.algorithm }

func (c compressedCodec) Marshal(state *domain.DBState) ([]byte, error) {
	raw, err := c.inner.Marshal(state)
	if err != nil {
		return nil, err
	}

	switch c.algorithm {
	case CompressionZstd:
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd encoder: %w", err)
		}
		defer encoder.Close()
		return encoder.EncodeAll(raw, nil), nil
	default:
		var buf bytes.Buffer
		writer := lz4.NewWriter(&buf)
		if _, err := writer.Write(raw); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	}
}

func (c compressedCodec) Unmarshal(data []byte, state *domain.DBState) error {
	if len(data) == 0 {
		return errEmptyDocument
	}

	var raw []byte
	switch c.algorithm {
	case CompressionZstd:
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return fmt.Errorf("zstd decoder: %w", err)
		}
		defer decoder.Close()
		raw, err = decoder.DecodeAll(data, nil)
		if err != nil {
			return fmt.Errorf("zstd decompress: %w", err)
		}
	default:
		var err error
		raw, err = io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return fmt.Errorf("lz4 decompress: %w", err)
		}
	}

	return c.inner.Unmarshal(raw, state)
}
