package instance

import (
	"strings"
	"testing"
)

func TestLock_SecondAcquireFails(t *testing.T) {
	dir := t.TempDir()

	fl, err := Lock(dir)
	if err != nil {
		t.Fatalf("first Lock: %v", err)
	}
	defer Cleanup(dir, fl)

	if _, err := Lock(dir); err == nil {
		t.Fatal("second Lock should fail while the first is held")
	}
}

func TestLock_ReacquireAfterCleanup(t *testing.T) {
	dir := t.TempDir()

	fl, err := Lock(dir)
	if err != nil {
		t.Fatalf("Lock: %v", err)
	}
	Cleanup(dir, fl)

	fl2, err := Lock(dir)
	if err != nil {
		t.Fatalf("re-Lock after Cleanup: %v", err)
	}
	Cleanup(dir, fl2)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	if _, err := Discover(dir); err == nil {
		t.Fatal("Discover without a port file should fail")
	}

	if err := WritePort(dir, "127.0.0.1:4242"); err != nil {
		t.Fatalf("WritePort: %v", err)
	}
	url, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if !strings.HasPrefix(url, "http://127.0.0.1:4242") {
		t.Errorf("url = %q", url)
	}
}
