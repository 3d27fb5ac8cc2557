package handlers

import (
	"encoding/json"
	"net/http"
)

// Code is the fixed response-code enumeration carried by every response
// envelope.
type Code string

const (
	CodeSuccess            Code = "SUCCESS"
	CodeInvalidRequest     Code = "INVALID_REQUEST"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeTokenExpired       Code = "TOKEN_EXPIRED"
	CodeServerError        Code = "SERVER_ERROR"
)

// envelope is the JSON body of every response. Only code is always present.
type envelope struct {
	Code  Code        `json:"code"`
	User  interface{} `json:"user,omitempty"`
	Token string      `json:"token,omitempty"`
	Error string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeCode(w http.ResponseWriter, status int, code Code) {
	writeJSON(w, status, envelope{Code: code})
}

// writeServerError reports an unexpected failure. The client gets a generic
// code plus the message, never a stack trace.
func writeServerError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, envelope{Code: CodeServerError, Error: err.Error()})
}
