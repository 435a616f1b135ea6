package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"vidtube.com/cmd/dal"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/paging"
	"vidtube.com/pkg/toggle"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	if Err.HTTPStatus() >= consts.StatusInternalServerError {
		hlog.Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
	}
	c.JSON(Err.HTTPStatus(), Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

// Handlers holds the collaborators shared by every route.
type Handlers struct {
	Store    dal.Store
	Composer *compose.Composer
	Engine   *toggle.Engine
	Blobs    oss.BlobStore
	// TmpDir receives multipart uploads before they reach the blob store.
	TmpDir string
}

type PageParam struct {
	Page  string `query:"page"`
	Limit string `query:"limit"`
}

func (p PageParam) Window() paging.Window {
	return paging.Parse(p.Page, p.Limit)
}

type VideoListParam struct {
	Page     string `query:"page"`
	Limit    string `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   string `query:"userId"`
}

func (p VideoListParam) Window() paging.Window {
	return paging.Parse(p.Page, p.Limit)
}

type VideoPublishParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type VideoUpdateParam struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

type ContentParam struct {
	Content string `form:"content" json:"content"`
}

type PlaylistParam struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type RegisterParam struct {
	Username string `form:"username"`
	FullName string `form:"fullName"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// actorOf returns the resolved actor or 0 for anonymous requests.
func actorOf(c *app.RequestContext) int64 {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// pathID parses a positive id from a route parameter.
func pathID(c *app.RequestContext, name string) (int64, error) {
	id, ok := utils.ParseID(c.Param(name))
	if !ok {
		return 0, errno.ParamErr.WithMessage(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

// saveUpload stores the multipart file field into TmpDir. A missing field
// yields an empty path. The caller removes the file once done with it.
func (h *Handlers) saveUpload(c *app.RequestContext, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	dir := h.TmpDir
	if dir == "" {
		dir = os.TempDir()
	}
	dst := filepath.Join(dir, fmt.Sprintf("%d%s", utils.GenerateID(), filepath.Ext(fh.Filename)))
	if err = c.SaveUploadedFile(fh, dst); err != nil {
		return "", errno.ServiceErr.WithMessage("failed to store upload")
	}
	return dst, nil
}

// discard removes temp uploads the blob store did not consume.
func discard(paths ...string) {
	for _, p := range paths {
		if p != "" {
			_ = os.Remove(p)
		}
	}
}
