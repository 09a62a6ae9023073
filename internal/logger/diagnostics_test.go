package logger

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestCannotAccessFormat(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf)

	d.CannotAccess("/no/such/path", errors.New("no such file or directory"))

	want := "lsgo: cannot access '/no/such/path': no such file or directory\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if d.Count() != 1 {
		t.Errorf("count = %d, want 1", d.Count())
	}
}

func TestNilWriterStillCounts(t *testing.T) {
	d := NewDiagnostics(nil)
	d.CannotAccess("x", errors.New("boom"))
	d.CannotAccess("y", errors.New("boom"))

	if d.Count() != 2 {
		t.Errorf("count = %d, want 2", d.Count())
	}
}

func TestZeroDiagnosticsMeansCleanRun(t *testing.T) {
	d := NewDiagnostics(&bytes.Buffer{})
	if d.Count() != 0 {
		t.Errorf("fresh sink count = %d, want 0", d.Count())
	}
}

func TestConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			d.CannotAccess(fmt.Sprintf("path-%d", n), errors.New("err"))
		}(i)
	}
	wg.Wait()

	if d.Count() != 50 {
		t.Errorf("count = %d, want 50", d.Count())
	}
}

func TestNoColorForPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf)
	d.CannotAccess("p", errors.New("e"))

	if bytes.Contains(buf.Bytes(), []byte("\x1b[")) {
		t.Errorf("non-terminal writer got escape sequences: %q", buf.String())
	}
}
