package response

// GenerateOTPResponse never carries the code itself; the code is delivered
// only via the notification channel.
type GenerateOTPResponse struct {
	Email    string `json:"email"`
	FlowType string `json:"flowType"`
	Message  string `json:"message"`
}

type VerifyOTPResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
