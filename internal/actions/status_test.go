package actions

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/benchkit/benchkit-cli/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestSiteCheckWithBackoff(t *testing.T) {
	t.Run("reachable site reports status code", func(t *testing.T) {
		ctl := gomock.NewController(t)
		getter := mocks.NewMockHTTPGetter(ctl)

		body := &closeRecorder{Reader: strings.NewReader("ok")}
		getter.EXPECT().
			Do(gomock.Any()).
			DoAndReturn(func(req *http.Request) (*http.Response, error) {
				// Tenant is resolved by Host header, not by url
				assert.Equal(t, "site1.local", req.Host)
				assert.Equal(t, "http://127.0.0.1:8000", req.URL.String())
				return &http.Response{StatusCode: http.StatusOK, Body: body}, nil
			})

		c := &Container{HttpClient: getter}

		ch := make(chan healthCheckMsg, 4)
		err := c.siteCheckWithBackoff(ch, "http://127.0.0.1:8000", "site1.local", time.Second*2)
		require.NoError(t, err)
		close(ch)

		var last healthCheckMsg
		for msg := range ch {
			last = msg
		}
		assert.True(t, last.done)
		assert.True(t, last.success)
		assert.Equal(t, http.StatusOK, last.responseStatus)
		assert.True(t, body.closed)
	})

	t.Run("retries with doubled timeout until giving up", func(t *testing.T) {
		ctl := gomock.NewController(t)
		getter := mocks.NewMockHTTPGetter(ctl)

		// 40s start exceeds MaxRequestWaitTime after one doubling
		getter.EXPECT().Do(gomock.Any()).Return(nil, assert.AnError).Times(1)

		c := &Container{HttpClient: getter}

		ch := make(chan healthCheckMsg, 4)
		err := c.siteCheckWithBackoff(ch, "http://127.0.0.1:8000", "site1.local", time.Second*40)
		require.NoError(t, err)
		close(ch)

		var last healthCheckMsg
		for msg := range ch {
			last = msg
		}
		assert.True(t, last.done)
		assert.False(t, last.success)
	})
}
