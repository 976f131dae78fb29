package constvars

const (
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	HeaderContentType  = "Content-Type"
	HeaderXRequestID   = "X-Request-ID"
	HeaderRapidAPIKey  = "X-RapidAPI-Key"
	HeaderRapidAPIHost = "X-RapidAPI-Host"
)
