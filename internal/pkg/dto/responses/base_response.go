package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorDTO struct {
	StatusCode int            `json:"status_code"`
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	DevMessage string         `json:"dev_message,omitempty"`
	Location   *ErrorLocation `json:"location,omitempty"`
}

type ErrorLocation struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}
