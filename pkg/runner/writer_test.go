package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/user/framepipe/pkg/adapters/logger"
	"github.com/user/framepipe/pkg/adapters/stdcodec"
	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/mocks"
	"github.com/user/framepipe/pkg/stream"
)

func recordLine(t *testing.T, w, h int) []byte {
	t.Helper()
	pix := make([]byte, w*h*frame.ChannelsRGB)
	for i := range pix {
		pix[i] = byte(i)
	}
	buf := &frame.Buffer{Width: w, Height: h, Channels: frame.ChannelsRGB, Pix: pix}
	line, err := frame.NewRecord(buf, "stdin:", "png").MarshalLine()
	if err != nil {
		t.Fatal(err)
	}
	return line
}

func TestWriter_SavesEveryFrame(t *testing.T) {
	var in bytes.Buffer
	in.Write(recordLine(t, 4, 4))
	in.Write(recordLine(t, 2, 2))

	fs := mocks.NewFileSystem()
	var out bytes.Buffer
	w := NewWriter(stdcodec.New(), fs, stream.NewUnionWriter(&out, false),
		logger.NewNoop(), []string{"last.png"})

	if err := w.Run(context.Background(), &in); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Each frame overwrites the same path; the last one wins.
	data, ok := fs.GetFile("last.png")
	if !ok {
		t.Fatal("last.png missing")
	}
	back, _, err := stdcodec.New().Decode(data)
	if err != nil {
		t.Fatalf("written file does not decode: %v", err)
	}
	if back.Width != 2 || back.Height != 2 {
		t.Errorf("expected the last frame on disk, got %dx%d", back.Width, back.Height)
	}
	if out.Len() != 0 {
		t.Errorf("union off: stdout should be silent, got %q", out.String())
	}
}

func TestWriter_MalformedRecordDoesNotStopStream(t *testing.T) {
	var in bytes.Buffer
	in.Write(recordLine(t, 3, 3))
	in.WriteString("this is not json\n")
	in.Write(recordLine(t, 5, 5))

	fs := mocks.NewFileSystem()
	var out bytes.Buffer
	w := NewWriter(stdcodec.New(), fs, stream.NewUnionWriter(&out, false),
		logger.NewNoop(), []string{"out.png"})

	if err := w.Run(context.Background(), &in); err != nil {
		t.Fatalf("a malformed record must not fail the run: %v", err)
	}

	data, ok := fs.GetFile("out.png")
	if !ok {
		t.Fatal("out.png missing")
	}
	back, _, err := stdcodec.New().Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.Width != 5 {
		t.Errorf("expected the frame after the bad line to be written, got width %d", back.Width)
	}
}

func TestWriter_UnionReproducesInput(t *testing.T) {
	var in bytes.Buffer
	in.Write(recordLine(t, 3, 2))
	in.WriteString("garbage line\n")
	in.Write(recordLine(t, 2, 3))
	input := in.String()

	var out bytes.Buffer
	w := NewWriter(stdcodec.New(), mocks.NewFileSystem(),
		stream.NewUnionWriter(&out, true), logger.NewNoop(), []string{"out.png"})

	if err := w.Run(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.String() != input {
		t.Errorf("union output does not reproduce input:\n got %q\nwant %q", out.String(), input)
	}
}

func TestWriter_UnionAppendsNewlineToTrailingLine(t *testing.T) {
	input := string(recordLine(t, 2, 2))
	input = input[:len(input)-1] // drop the final newline

	var out bytes.Buffer
	w := NewWriter(stdcodec.New(), mocks.NewFileSystem(),
		stream.NewUnionWriter(&out, true), logger.NewNoop(), nil)

	if err := w.Run(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.String() != input+"\n" {
		t.Errorf("expected trailing line terminated on the way out, got %q", out.String())
	}
}

func TestWriter_NoPaths(t *testing.T) {
	var in bytes.Buffer
	in.Write(recordLine(t, 2, 2))

	fs := mocks.NewFileSystem()
	var out bytes.Buffer
	w := NewWriter(stdcodec.New(), fs, stream.NewUnionWriter(&out, false),
		logger.NewNoop(), nil)

	if err := w.Run(context.Background(), &in); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if fs.FileCount() != 0 {
		t.Errorf("expected no files, got %d", fs.FileCount())
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var in bytes.Buffer
	in.Write(recordLine(t, 2, 2))

	w := NewWriter(stdcodec.New(), mocks.NewFileSystem(),
		stream.NewUnionWriter(&bytes.Buffer{}, false), logger.NewNoop(), nil)

	if err := w.Run(ctx, &in); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
