package code

// 错误码消息映射，消息直接面向前端展示，使用英文
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "Success",
	ErrUnknown:         "Unknown error",
	ErrBind:            "Invalid request payload",
	ErrValidation:      "Request validation failed",
	ErrTokenInvalid:    "Unauthorized",
	ErrTooManyRequests: "Too many requests, please try again later",

	// 账户相关错误码
	ErrAccountNotFound:      "Account not found",
	ErrEmailAlreadyExist:    "Email is already taken",
	ErrUsernameAlreadyExist: "Username is already taken",
	ErrPasswordIncorrect:    "Invalid username or password",

	// 会员相关错误码
	ErrMemberNotFound:     "Member not found",
	ErrMemberAlreadyExist: "Member already exists",

	// 文件相关错误码
	ErrFileTypeNotAllowed: "File type is not allowed. Only .jpg, .jpeg, .png and .pdf are accepted",
	ErrFileTooLarge:       "File exceeds the maximum allowed size of 10MB",
	ErrFileEmpty:          "File is empty",
	ErrFileNotFound:       "File not found",

	// 数据库相关错误码
	ErrDatabase:       "Problem saving changes",
	ErrRecordNotFound: "Record not found",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 账户相关错误码
	ErrAccountNotFound:      StatusNotFound,
	ErrEmailAlreadyExist:    StatusBadRequest,
	ErrUsernameAlreadyExist: StatusBadRequest,
	ErrPasswordIncorrect:    StatusUnauthorized,

	// 会员相关错误码
	ErrMemberNotFound:     StatusNotFound,
	ErrMemberAlreadyExist: StatusBadRequest,

	// 文件相关错误码
	ErrFileTypeNotAllowed: StatusBadRequest,
	ErrFileTooLarge:       StatusBadRequest,
	ErrFileEmpty:          StatusBadRequest,
	ErrFileNotFound:       StatusNotFound,

	// 数据库相关错误码 - 持久化失败按约定返回400
	ErrDatabase:       StatusBadRequest,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Unknown error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
