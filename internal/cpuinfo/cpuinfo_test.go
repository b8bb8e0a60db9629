package cpuinfo

import "testing"

func TestBackendIsSerial(t *testing.T) {
	if got := Backend(); got != "serial" {
		t.Errorf("Backend() = %q, want %q", got, "serial")
	}
}

func TestFeatureFlagsDoNotPanic(t *testing.T) {
	// The flags are read at package init from golang.org/x/sys/cpu; this
	// just guards against a future change wiring them into something that
	// could panic on a probe failure.
	_ = HasAVX
	_ = HasSSE41
	_ = HasASIMD
}
