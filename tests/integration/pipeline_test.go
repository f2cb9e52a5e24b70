// Package integration exercises the reader, viewer and writer wired
// together through in-memory streams, the way a shell pipeline chains
// their stdio.
package integration

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/framepipe/pkg/adapters/httpsource"
	"github.com/user/framepipe/pkg/adapters/logger"
	"github.com/user/framepipe/pkg/adapters/osfilesystem"
	"github.com/user/framepipe/pkg/adapters/stdcodec"
	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/mocks"
	"github.com/user/framepipe/pkg/pipeline"
	"github.com/user/framepipe/pkg/runner"
	"github.com/user/framepipe/pkg/stream"
)

// writeTestPNG writes a small image with a recognizable pattern and
// returns its path.
func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 20), G: uint8(y * 20), B: 128, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "input.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestReaderToWriter pipes a reader's record stream into a writer and
// checks the frame lands on disk intact.
func TestReaderToWriter(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoop()
	codec := stdcodec.New()
	input := writeTestPNG(t, 8, 6)

	var pipe bytes.Buffer
	reader := runner.NewReader(httpsource.New(nil), codec,
		stream.NewUnionWriter(&pipe, false), log)
	if err := reader.Run(ctx, input, nil); err != nil {
		t.Fatalf("reader failed: %v", err)
	}

	outDir := t.TempDir()
	outPath := filepath.Join(outDir, "copy.png")
	writer := runner.NewWriter(codec, osfilesystem.New(),
		stream.NewUnionWriter(&bytes.Buffer{}, false), log, []string{outPath})
	if err := writer.Run(ctx, &pipe); err != nil {
		t.Fatalf("writer failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	buf, format, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("output does not decode: %v", err)
	}
	if format != "png" {
		t.Errorf("unexpected output format %q", format)
	}
	if buf.Width != 8 || buf.Height != 6 {
		t.Errorf("unexpected dimensions %dx%d", buf.Width, buf.Height)
	}
}

// TestReaderResizeToWriter covers the resize path end to end.
func TestReaderResizeToWriter(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoop()
	codec := stdcodec.New()
	input := writeTestPNG(t, 100, 50)

	var pipe bytes.Buffer
	reader := runner.NewReader(httpsource.New(nil), codec,
		stream.NewUnionWriter(&pipe, false), log)
	if err := reader.Run(ctx, input, &pipeline.Size{Width: 50, Height: 25}); err != nil {
		t.Fatalf("reader failed: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "small.bmp")
	writer := runner.NewWriter(codec, osfilesystem.New(),
		stream.NewUnionWriter(&bytes.Buffer{}, false), log, []string{outPath})
	if err := writer.Run(ctx, &pipe); err != nil {
		t.Fatalf("writer failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	buf, _, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("output does not decode: %v", err)
	}
	if buf.Width != 50 || buf.Height != 25 {
		t.Errorf("expected 50x25, got %dx%d", buf.Width, buf.Height)
	}
}

// TestUnionChain chains reader -> writer(union) -> viewer: the writer's
// passthrough copy must feed the viewer the exact same record.
func TestUnionChain(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoop()
	codec := stdcodec.New()
	input := writeTestPNG(t, 5, 5)

	var first bytes.Buffer
	reader := runner.NewReader(httpsource.New(nil), codec,
		stream.NewUnionWriter(&first, false), log)
	if err := reader.Run(ctx, input, nil); err != nil {
		t.Fatalf("reader failed: %v", err)
	}
	produced := first.String()

	outPath := filepath.Join(t.TempDir(), "stage.png")
	var second bytes.Buffer
	writer := runner.NewWriter(codec, osfilesystem.New(),
		stream.NewUnionWriter(&second, true), log, []string{outPath})
	if err := writer.Run(ctx, &first); err != nil {
		t.Fatalf("writer failed: %v", err)
	}

	if second.String() != produced {
		t.Fatal("union writer did not reproduce the record stream")
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("writer output missing: %v", err)
	}

	display := mocks.NewDisplay()
	viewer := runner.NewViewer(display, stream.NewUnionWriter(&bytes.Buffer{}, false), log)
	if err := viewer.Run(ctx, &second); err != nil {
		t.Fatalf("viewer failed: %v", err)
	}

	shown := display.Shown()
	if len(shown) != 1 {
		t.Fatalf("expected 1 frame shown, got %d", len(shown))
	}
	if shown[0].Buffer.Width != 5 || shown[0].Buffer.Height != 5 {
		t.Errorf("unexpected frame %dx%d", shown[0].Buffer.Width, shown[0].Buffer.Height)
	}
}

// TestMixedStreamSurvivesBadRecords feeds a writer a stream with an
// interleaved garbage line; the good frames must still be written and
// the passthrough must stay byte-exact.
func TestMixedStreamSurvivesBadRecords(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoop()
	codec := stdcodec.New()

	makeLine := func(w, h int) []byte {
		pix := make([]byte, w*h*frame.ChannelsRGB)
		for i := range pix {
			pix[i] = byte(i)
		}
		b := &frame.Buffer{Width: w, Height: h, Channels: frame.ChannelsRGB, Pix: pix}
		line, err := frame.NewRecord(b, "stdin:", "png").MarshalLine()
		if err != nil {
			t.Fatal(err)
		}
		return line
	}

	var in bytes.Buffer
	in.Write(makeLine(3, 3))
	in.WriteString("half a record\n")
	in.Write(makeLine(4, 4))
	streamText := in.String()

	outPath := filepath.Join(t.TempDir(), "frame.png")
	var out bytes.Buffer
	writer := runner.NewWriter(codec, osfilesystem.New(),
		stream.NewUnionWriter(&out, true), log, []string{outPath})
	if err := writer.Run(ctx, &in); err != nil {
		t.Fatalf("writer failed: %v", err)
	}

	if out.String() != streamText {
		t.Error("passthrough altered the stream")
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	buf, _, err := codec.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Width != 4 {
		t.Errorf("expected the last good frame on disk, got width %d", buf.Width)
	}
}
