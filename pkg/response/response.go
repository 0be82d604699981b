package response

import (
	"encoding/json"
	"net/http"
)

// The wire contract is deliberately flat: reads return the raw array or
// object, writes return the created/updated record or a message, and
// failures return {"error": message}.

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"error": message})
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"message": message})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Solicitud inválida"
	}
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Registro no encontrado"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Error interno"
	}
	Error(w, http.StatusInternalServerError, message)
}

func BadGateway(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Base de datos no disponible"
	}
	Error(w, http.StatusBadGateway, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "No autorizado"
	}
	JSON(w, http.StatusUnauthorized, map[string]interface{}{"ok": false, "message": message})
}
