package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"vidtube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(t *testing.T, c *app.RequestContext) Response {
	t.Helper()
	var r Response
	require.NoError(t, json.Unmarshal(c.Response.Body(), &r))
	return r
}

func TestSendResponseHidesStoreErrors(t *testing.T) {
	c := app.NewContext(0)
	SendResponse(c, errors.WithMessage(errors.New("dial tcp 10.0.0.5:3306: connection refused"), "dal.FindVideoByID failed"), nil)

	assert.Equal(t, http.StatusInternalServerError, c.Response.StatusCode())
	r := reply(t, c)
	assert.Equal(t, int64(errno.ServiceErrCode), r.Code)
	assert.NotContains(t, r.Message, "3306")
}

func TestSendResponseKeepsErrNoMessage(t *testing.T) {
	c := app.NewContext(0)
	SendResponse(c, errno.NotFoundErr.WithMessage("video does not exist"), nil)

	assert.Equal(t, http.StatusNotFound, c.Response.StatusCode())
	r := reply(t, c)
	assert.Equal(t, int64(errno.NotFoundErrCode), r.Code)
	assert.Equal(t, "video does not exist", r.Message)
}
