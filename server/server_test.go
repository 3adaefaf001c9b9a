package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/podscope/server/mocks"
)

func TestServer_RunShutdown(t *testing.T) {
	// grab a free port
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return addr, 5 * time.Second
		},
	}
	s := New(cfg, &mocks.DatabaseMock{}, &mocks.RunnerMock{}, &mocks.SpendingMock{}, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// wait for the server to come up
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err, "graceful shutdown returns no error")
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_AppInfoHeaders(t *testing.T) {
	_, ts := testServer(&mocks.DatabaseMock{}, &mocks.RunnerMock{}, &mocks.SpendingMock{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "podscope", resp.Header.Get("App-Name"))
	assert.Equal(t, "test-version", resp.Header.Get("App-Version"))
}
