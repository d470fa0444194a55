package httpserver

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestNewAppliesDefaults(t *testing.T) {
	srv := New("127.0.0.1:0", http.NotFoundHandler(), 0)

	if srv.Addr() != "127.0.0.1:0" {
		t.Fatalf("unexpected addr %q", srv.Addr())
	}
	if srv.inner.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected write timeout %v", srv.inner.WriteTimeout)
	}
	if srv.inner.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("unexpected read header timeout %v", srv.inner.ReadHeaderTimeout)
	}
}

func TestShutdownStopsStart(t *testing.T) {
	srv := New("127.0.0.1:0", http.NotFoundHandler(), time.Second)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Give ListenAndServe a moment to bind before shutting down.
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("expected ErrServerClosed got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}
