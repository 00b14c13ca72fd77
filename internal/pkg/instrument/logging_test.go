package instrument

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newMaskedLogger(buf *bytes.Buffer, fields ...string) *slog.Logger {
	return slog.New(&maskHandler{
		handler:  slog.NewJSONHandler(buf, nil),
		maskKeys: buildMaskKeys(fields),
	})
}

func TestMaskHandlerHidesSecrets(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newMaskedLogger(buf, "password", "salt", "digest")

	logger.InfoContext(context.Background(), "register attempt",
		"username", "alice",
		"password", "Tr0ub4dor&3",
		slog.Group("record", "salt", "c2FsdA", "digest", "ZGlnZXN0"),
	)

	out := buf.String()
	for _, secret := range []string{"Tr0ub4dor&3", "c2FsdA", "ZGlnZXN0"} {
		if strings.Contains(out, secret) {
			t.Errorf("log output leaked %q: %s", secret, out)
		}
	}
	if !strings.Contains(out, "alice") {
		t.Errorf("log output lost non-secret field: %s", out)
	}
	if !strings.Contains(out, "***") {
		t.Errorf("log output missing mask marker: %s", out)
	}
}

func TestMaskHandlerMasksPreboundAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newMaskedLogger(buf, "password").With("password", "hunter2")

	logger.Info("noop")

	if strings.Contains(buf.String(), "hunter2") {
		t.Errorf("log output leaked pre-bound secret: %s", buf.String())
	}
}
