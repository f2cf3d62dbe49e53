package monitor

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// httpServer runs a http.Server as a task, shutting it down when the
// context is canceled.
type httpServer struct {
	server *http.Server
}

func newHTTPServer(addr string, handler http.Handler) *httpServer {
	return &httpServer{server: &http.Server{Addr: addr, Handler: handler}}
}

func (s *httpServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.server.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.server.Shutdown(shutdownCtx)
	if serveErr := <-errCh; !errors.Is(serveErr, http.ErrServerClosed) && err == nil {
		err = serveErr
	}
	return err
}
