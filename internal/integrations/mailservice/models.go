package mailservice

// SendMailRequest запрос на отправку письма пользователю
type SendMailRequest struct {
	UserID  int64  `json:"userId"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// SendMailResponse ответ почтового сервиса
type SendMailResponse struct {
	StatusCode int    `json:"statusCode"`
	Errors     string `json:"errors,omitempty"`
}
