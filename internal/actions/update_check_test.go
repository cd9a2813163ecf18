package actions

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/benchkit/benchkit-cli/internal/mocks"
	"github.com/magiconair/properties/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const branchesPageHTML = `<html><body>
<ul>
	<li><a href="/frappe/frappe/tree/develop">develop</a></li>
	<li><a href="/frappe/frappe/tree/version-13">version-13</a></li>
	<li><a href="/frappe/frappe/tree/version-15">version-15</a></li>
	<li><a href="/frappe/frappe/tree/version-14">version-14</a></li>
	<li><a href="/frappe/frappe/tree/version-15">version-15 duplicate</a></li>
	<li><a href="/frappe/frappe/pulls">pull requests</a></li>
</ul>
</body></html>`

func TestFetchVersionBranches(t *testing.T) {
	ctl := gomock.NewController(t)
	getter := mocks.NewMockHTTPGetter(ctl)

	getter.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, req.URL.String(), frameworkBranchesURL)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(branchesPageHTML)),
			}, nil
		})

	c := &Container{HttpClient: getter}

	branches, err := c.fetchVersionBranches()
	require.NoError(t, err)
	assert.Equal(t, branches, []string{"version-13", "version-14", "version-15"})
}

func TestBranchVersionNumber(t *testing.T) {
	tests := []struct {
		branch string
		want   int
	}{
		{branch: "version-15", want: 15},
		{branch: "version-9", want: 9},
		{branch: "develop", want: 0},
		{branch: "version-", want: 0},
		{branch: "", want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, branchVersionNumber(tt.branch), tt.want)
	}
}
