package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-airbnb-api/internal/config"
	"github.com/MKhiriev/go-airbnb-api/internal/handler"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/service"
)

func TestNewServer(t *testing.T) {
	handlers, err := handler.NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.NoError(t, err)

	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  error
	}{
		{name: "http", handlers: handlers, cfg: config.Server{HTTPAddress: ":0", RequestTimeout: time.Second}},
		{name: "nil handlers", handlers: nil, cfg: config.Server{HTTPAddress: ":0"}, wantErr: errNoServersAreCreated},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":0"}, wantErr: errNoServersAreCreated},
		{name: "no address", handlers: handlers, cfg: config.Server{}, wantErr: errNoServersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	var hasDeadline bool
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	})

	srv := newHTTPServer(router, config.Server{HTTPAddress: ":0", RequestTimeout: time.Minute}, logger.Nop())
	srv.server.Handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, hasDeadline)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)

	srv = newHTTPServer(router, config.Server{HTTPAddress: ":0"}, logger.Nop())
	srv.server.Handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, hasDeadline)
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:-1"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	err := s.run(context.Background())
	require.Error(t, err)
}
