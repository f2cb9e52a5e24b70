package sink

import (
	"context"
	"errors"
	"testing"

	"github.com/user/framepipe/pkg/adapters/logger"
	"github.com/user/framepipe/pkg/adapters/stdcodec"
	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/mocks"
	"github.com/user/framepipe/pkg/pipeline"
)

var errPermission = errors.New("permission denied")

func testFrame() *frame.Buffer {
	pix := make([]byte, 4*3*frame.ChannelsRGB)
	for i := range pix {
		pix[i] = byte(i * 5)
	}
	return &frame.Buffer{Width: 4, Height: 3, Channels: frame.ChannelsRGB, Pix: pix}
}

func TestStage_FanOut(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := New(stdcodec.New(), fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.SinkInput{
		Buffer: testFrame(),
		Index:  1,
		Paths:  []string{"a.png", "b.bmp"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Written) != 2 || len(result.Failed) != 0 {
		t.Fatalf("expected 2 written, 0 failed, got %d/%d", len(result.Written), len(result.Failed))
	}
	if fs.FileCount() != 2 {
		t.Errorf("expected 2 files, got %d", fs.FileCount())
	}
	if data, ok := fs.GetFile("a.png"); !ok || len(data) == 0 {
		t.Error("a.png missing or empty")
	}
}

func TestStage_BadPathDoesNotAbortOthers(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := New(stdcodec.New(), fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.SinkInput{
		Buffer: testFrame(),
		Index:  1,
		Paths:  []string{"a.png", "b.unsupported", "c.bmp"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Written) != 2 {
		t.Fatalf("expected 2 written, got %v", result.Written)
	}
	if len(result.Failed) != 1 || result.Failed[0].Path != "b.unsupported" {
		t.Fatalf("expected b.unsupported to fail, got %v", result.Failed)
	}
	if _, ok := fs.GetFile("a.png"); !ok {
		t.Error("a.png missing")
	}
	if _, ok := fs.GetFile("c.bmp"); !ok {
		t.Error("c.bmp missing")
	}
	if _, ok := fs.GetFile("b.unsupported"); ok {
		t.Error("unsupported path should not be written")
	}
}

func TestStage_WriteFailureIsScoped(t *testing.T) {
	fs := mocks.NewFileSystem()
	written := map[string]bool{}
	fs.WriteFileFunc = func(path string, data []byte) error {
		if path == "a.png" {
			return errPermission
		}
		written[path] = true
		return nil
	}
	stage := New(stdcodec.New(), fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.SinkInput{
		Buffer: testFrame(),
		Index:  2,
		Paths:  []string{"a.png", "b.png"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Failed) != 1 || result.Failed[0].Path != "a.png" {
		t.Fatalf("expected a.png to fail, got %v", result.Failed)
	}
	if len(result.Written) != 1 || result.Written[0] != "b.png" {
		t.Fatalf("expected b.png written, got %v", result.Written)
	}
	if !written["b.png"] {
		t.Error("b.png never reached the filesystem")
	}
}

func TestStage_NoPaths(t *testing.T) {
	stage := New(stdcodec.New(), mocks.NewFileSystem(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.SinkInput{
		Buffer: testFrame(),
		Index:  1,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Written) != 0 || len(result.Failed) != 0 {
		t.Errorf("expected empty result, got %v", result)
	}
}
