package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("chunks=%d", 4)
	if got != "chunks=4" {
		t.Fatalf("logged %q, expected %q", got, "chunks=4")
	}

	got = ""
	SetLogger(nil)
	Logf("ignored")
	if got != "" {
		t.Fatalf("no-op logger forwarded %q", got)
	}
}
