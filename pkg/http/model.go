package http

// Envelope wraps every JSON body. Status mirrors the HTTP status code.
type Envelope struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// Problem is one entry in the data list of a failed response.
type Problem struct {
	Code    string                 `json:"code" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"symbol"`
	Message string                 `json:"message" example:"symbol is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
