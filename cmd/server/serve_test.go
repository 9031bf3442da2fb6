package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenAndServe(t *testing.T) {
	t.Run("端口被占用时不标记就绪", func(t *testing.T) {
		occupied, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer occupied.Close()

		called := false
		srv := &http.Server{Addr: occupied.Addr().String()}
		err = listenAndServe(srv, func() { called = true })

		assert.Error(t, err)
		assert.False(t, called)
	})

	t.Run("绑定成功后标记就绪", func(t *testing.T) {
		srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
		listening := make(chan struct{})
		done := make(chan error, 1)

		go func() {
			done <- listenAndServe(srv, func() { close(listening) })
		}()

		select {
		case <-listening:
		case <-time.After(5 * time.Second):
			t.Fatal("server did not start listening")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, srv.Shutdown(ctx))
		assert.True(t, errors.Is(<-done, http.ErrServerClosed))
	})
}
