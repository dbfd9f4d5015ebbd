package response

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jas-4484/enrollment-api/internal/models"
)

const internalMessage = "Something is wrong, please try again"

// JSON writes body as the response with the given status code.
func JSON(w http.ResponseWriter, status int, body models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func Success(w http.ResponseWriter, status int, message string, data any) {
	JSON(w, status, models.Response{Success: true, Message: message, Data: data})
}

// Failure answers with success=false. detail is placed in the error field
// when non-nil.
func Failure(w http.ResponseWriter, status int, message string, detail any) {
	JSON(w, status, models.Response{Success: false, Message: message, Error: detail})
}

// Internal reports an unanticipated fault, attaching the raw error text.
func Internal(w http.ResponseWriter, err error) {
	var detail any
	if err != nil {
		detail = err.Error()
	}
	Failure(w, http.StatusInternalServerError, internalMessage, detail)
}
