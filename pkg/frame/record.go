package frame

import (
	"bytes"
	"encoding/base64"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/user/framepipe/pkg/framepipe"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TypeImage is the JSON-LD type tag of a frame record.
const TypeImage = "Image"

// Record is the wire unit exchanged between pipeline stages: one
// self-contained JSON-LD object per line. Unknown extra fields in
// incoming records are ignored.
type Record struct {
	Type     string    `json:"@type,omitempty"`
	ID       string    `json:"@id,omitempty"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Channels int       `json:"channels,omitempty"`
	Data     PixelData `json:"data"`
	Source   string    `json:"source,omitempty"`
	Format   string    `json:"format,omitempty"`
}

// PixelData holds raw pixel bytes. It marshals as base64 and
// unmarshals from either base64 or a JSON array of byte values, the
// latter for records produced by serializers that emit byte arrays.
type PixelData []byte

// MarshalJSON encodes the pixel bytes as a base64 string.
func (d PixelData) MarshalJSON() ([]byte, error) {
	enc := base64.StdEncoding
	out := make([]byte, 0, enc.EncodedLen(len(d))+2)
	out = append(out, '"')
	encoded := make([]byte, enc.EncodedLen(len(d)))
	enc.Encode(encoded, d)
	out = append(out, encoded...)
	out = append(out, '"')
	return out, nil
}

// UnmarshalJSON decodes from a base64 string or a number array.
func (d *PixelData) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return framepipe.New(framepipe.CategoryRecord, "empty pixel data")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return framepipe.Wrap(framepipe.CategoryRecord, "pixel data is not valid base64", err)
		}
		*d = decoded
		return nil
	case '[':
		var values []int
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		decoded := make([]byte, len(values))
		for i, v := range values {
			if v < 0 || v > 255 {
				return framepipe.Newf(framepipe.CategoryRecord,
					"pixel data value %d at index %d out of byte range", v, i)
			}
			decoded[i] = byte(v)
		}
		*d = decoded
		return nil
	default:
		return framepipe.New(framepipe.CategoryRecord,
			"pixel data must be a base64 string or byte array")
	}
}

// NewRecord builds a record from a validated buffer plus provenance.
// Encoding never fails for a buffer that passes Validate.
func NewRecord(buf *Buffer, source, format string) *Record {
	return &Record{
		Type:     TypeImage,
		ID:       source,
		Width:    buf.Width,
		Height:   buf.Height,
		Channels: buf.Channels,
		Data:     PixelData(buf.Pix),
		Source:   source,
		Format:   format,
	}
}

// MarshalLine serializes the record as a single newline-terminated
// JSON line. The JSON encoder escapes any control characters, so the
// payload itself can never contain a raw newline.
func (r *Record) MarshalLine() ([]byte, error) {
	line, err := json.Marshal(r)
	if err != nil {
		return nil, framepipe.Wrap(framepipe.CategoryInternal, "marshaling frame record", err)
	}
	return append(line, '\n'), nil
}

// DecodeRecord parses one input line into a Record. It rejects invalid
// JSON, a wrong @type tag, missing or non-positive dimensions, an
// unknown channel layout and a data length that does not match
// width*height*channels.
func DecodeRecord(line []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, framepipe.Wrap(framepipe.CategoryRecord, "malformed frame record", err)
	}

	if rec.Type != "" && rec.Type != TypeImage {
		return nil, framepipe.Newf(framepipe.CategoryRecord,
			"malformed frame record: unexpected @type %s", strconv.Quote(rec.Type))
	}
	if rec.Channels == 0 {
		// RGB by convention when the field is absent.
		rec.Channels = ChannelsRGB
	}
	if err := rec.Buffer().Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Buffer returns the pixel buffer view of the record.
func (r *Record) Buffer() *Buffer {
	return &Buffer{
		Width:    r.Width,
		Height:   r.Height,
		Channels: r.Channels,
		Pix:      []byte(r.Data),
	}
}
