package dto

// VerifyCodeReq represents the request body for /verify-code.
type VerifyCodeReq struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// ResendCodeReq represents the request body for /resend-code.
type ResendCodeReq struct {
	Email string `json:"email" binding:"required,email"`
}
