//go:build unix

package ioutils

import (
	"context"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

func TestDescribeInput_FIFO(t *testing.T) {
	dir := t.TempDir()
	fifo := filepath.Join(dir, "pipe.png")
	if err := syscall.Mkfifo(fifo, 0644); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}

	done := make(chan struct{})
	var (
		file, folder *InputInfo
		errFile      error
		errFolder    error
	)
	go func() {
		defer close(done)
		svc := NewImageService()
		file, errFile = svc.DescribeInput(context.Background(), fifo)
		folder, errFolder = svc.DescribeInput(context.Background(), dir)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("DescribeInput() blocked on a FIFO")
	}

	if errFile != nil || file.Kind != InputOther {
		t.Errorf("FIFO input = %+v, %v; want InputOther", file, errFile)
	}
	if errFolder != nil || folder.ImageCount != 0 {
		t.Errorf("directory with a FIFO = %+v, %v; want 0 images", folder, errFolder)
	}
}
