package app

import (
	"context"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownOnSignal(t *testing.T) {
	app := newTestApplication()

	srv := &http.Server{Handler: http.NotFoundHandler()}
	shutdownError := make(chan error, 2)
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	app.shutdownOnSignal(srv, quit, time.Second, shutdownError)

	require.Len(t, shutdownError, 1)
	assert.NoError(t, <-shutdownError)
}

func TestShutdownOnSignal_ReportsTimeoutOnce(t *testing.T) {
	app := newTestApplication()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})

	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
	})}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() {
		close(release)
		_ = srv.Close()
	})

	go func() {
		res, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			res.Body.Close()
		}
	}()
	<-entered

	// A background task that never finishes must not be waited on after a
	// failed shutdown.
	app.wg.Add(1)
	t.Cleanup(app.wg.Done)

	shutdownError := make(chan error, 2)
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGINT

	app.shutdownOnSignal(srv, quit, 10*time.Millisecond, shutdownError)

	require.Len(t, shutdownError, 1)
	assert.ErrorIs(t, <-shutdownError, context.DeadlineExceeded)
}
