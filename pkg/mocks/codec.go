package mocks

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/ports"
)

// ImageCodec is a mock implementation of ports.ImageCodec. By default
// Encode produces a recognizable placeholder payload and FormatForPath
// maps the common extensions; both can be overridden per test.
type ImageCodec struct {
	DecodeFunc        func(data []byte) (*frame.Buffer, string, error)
	EncodeFunc        func(buf *frame.Buffer, format ports.ImageFormat) ([]byte, error)
	FormatForPathFunc func(path string) (ports.ImageFormat, error)

	EncodeCalls []ports.ImageFormat
}

func (m *ImageCodec) Decode(data []byte) (*frame.Buffer, string, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return nil, "", fmt.Errorf("mock codec: no DecodeFunc configured")
}

func (m *ImageCodec) Encode(buf *frame.Buffer, format ports.ImageFormat) ([]byte, error) {
	m.EncodeCalls = append(m.EncodeCalls, format)
	if m.EncodeFunc != nil {
		return m.EncodeFunc(buf, format)
	}
	return []byte("encoded:" + string(format)), nil
}

func (m *ImageCodec) FormatForPath(path string) (ports.ImageFormat, error) {
	if m.FormatForPathFunc != nil {
		return m.FormatForPathFunc(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return ports.FormatPNG, nil
	case ".jpg", ".jpeg":
		return ports.FormatJPEG, nil
	case ".bmp":
		return ports.FormatBMP, nil
	default:
		return "", fmt.Errorf("mock codec: unrecognized extension in %q", path)
	}
}
