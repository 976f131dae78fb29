package utils

import (
	"errors"
	"net/http"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

// BuildSuccessResponse writes data as the raw JSON body. The booking frontend
// consumes entity shapes directly, without an envelope.
func BuildSuccessResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// BuildNoContentResponse writes the 204 confirmation with an empty body.
func BuildNoContentResponse(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// BuildErrorResponse maps an error to its HTTP status and the {"error": message}
// body the clients match on. Unrecognized errors become a 500.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithServer

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Error: clientMessage})
}
