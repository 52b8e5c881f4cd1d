package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 账户相关错误码 (101xxx).
const (
	// ErrAccountNotFound - 404: 账户不存在.
	ErrAccountNotFound int = iota + 101000
	// ErrEmailAlreadyExist - 400: 邮箱已被使用.
	ErrEmailAlreadyExist
	// ErrUsernameAlreadyExist - 400: 用户名已被使用.
	ErrUsernameAlreadyExist
	// ErrPasswordIncorrect - 401: 密码错误.
	ErrPasswordIncorrect
)

// 会员相关错误码 (102xxx).
const (
	// ErrMemberNotFound - 404: 会员不存在.
	ErrMemberNotFound int = iota + 102000
	// ErrMemberAlreadyExist - 400: 会员已存在.
	ErrMemberAlreadyExist
)

// 文件相关错误码 (103xxx).
const (
	// ErrFileTypeNotAllowed - 400: 文件类型不被允许.
	ErrFileTypeNotAllowed int = iota + 103000
	// ErrFileTooLarge - 400: 文件过大.
	ErrFileTooLarge
	// ErrFileEmpty - 400: 文件内容为空.
	ErrFileEmpty
	// ErrFileNotFound - 404: 文件不存在.
	ErrFileNotFound
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 400: 数据库操作失败.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
