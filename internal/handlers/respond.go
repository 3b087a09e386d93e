package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validationFailure turns validator errors into a 400 body listing each field.
func validationFailure(err error) errorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errorResponse{Error: err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required"
		default:
			fields[fe.Field()] = fmt.Sprintf("failed %s", fe.Tag())
		}
		names = append(names, fe.Field())
	}
	return errorResponse{
		Error:  "missing required fields: " + strings.Join(names, ", "),
		Fields: fields,
	}
}
