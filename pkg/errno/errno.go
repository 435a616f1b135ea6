package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	RequestErrCode             = 10003
	NotFoundErrCode            = 10004
	ForbiddenErrCode           = 10005
	AuthorizationFailedErrCode = 10006
	TooManyRequestsErrCode     = 10007
	OssErrCode                 = 10008
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{code, msg}
}

// WithMessage keeps the code and replaces the human-readable reason.
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// Is matches on the code only, so errors.Is(err, NotFoundErr) holds for any
// reason text carried by a NotFound error.
func (e ErrNo) Is(target error) bool {
	t, ok := target.(ErrNo)
	if !ok {
		return false
	}
	return t.ErrCode == e.ErrCode
}

// HTTPStatus classifies the error for the gateway.
func (e ErrNo) HTTPStatus() int {
	switch e.ErrCode {
	case SuccessCode:
		return consts.StatusOK
	case ParamErrCode, RequestErrCode:
		return consts.StatusBadRequest
	case NotFoundErrCode:
		return consts.StatusNotFound
	case ForbiddenErrCode:
		return consts.StatusForbidden
	case AuthorizationFailedErrCode:
		return consts.StatusUnauthorized
	case TooManyRequestsErrCode:
		return consts.StatusTooManyRequests
	default:
		return consts.StatusInternalServerError
	}
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Internal server error")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	RequestErr             = NewErrNo(RequestErrCode, "Request is invalid")
	NotFoundErr            = NewErrNo(NotFoundErrCode, "Resource is not found")
	ForbiddenErr           = NewErrNo(ForbiddenErrCode, "You are not the owner of this resource")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, "Authorization failed")
	TooManyRequestsErr     = NewErrNo(TooManyRequestsErrCode, "Too many requests, please try again later")
	OssErr                 = NewErrNo(OssErrCode, "Object storage is unavailable")
)

// ConvertErr convert error to Errno. Errors that carry no ErrNo become a bare
// ServiceErr; their text stays out of the reply.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	return ServiceErr
}
