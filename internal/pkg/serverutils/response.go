package serverutils

type Response[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

type ErrorBody struct {
	Success  bool   `json:"success"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

func ErrorResponse(code int, message, redirect string) ErrorBody {
	return ErrorBody{
		Success:  false,
		Code:     code,
		Message:  message,
		Redirect: redirect,
	}
}
