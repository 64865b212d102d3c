package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/academyhq/academy-console/backend"
	"github.com/academyhq/academy-console/filters"
	"github.com/academyhq/academy-console/mirror"
	"github.com/academyhq/academy-console/services" // Импортируем для маппинга ошибок сервисов
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err) // Паника, т.к. это ошибка программиста (передан не указатель)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	if err != nil {
		return err
	}

	return nil
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	err := writeJSON(w, status, env, nil)
	if err != nil {
		slog.Error("failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal error", slog.String("path", r.URL.Path), slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	errorResponse(w, r, http.StatusNotFound, message)
}

func unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusUnauthorized, message)
}

func forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusForbidden, message)
}

func badGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("upstream failure", slog.String("path", r.URL.Path), slog.Any("error", err))
	errorResponse(w, r, http.StatusBadGateway, "the academy backend is unavailable")
}

// mapServiceErrorToHTTP преобразует ошибки сервисного и backend-слоёв в
// HTTP-ответы консоли.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *backend.RequestError

	switch {
	case errors.Is(err, backend.ErrSessionExpired),
		errors.Is(err, services.ErrNotAuthenticated):
		unauthorizedResponse(w, r, "session expired, please log in again")

	case errors.Is(err, services.ErrForbidden):
		forbiddenResponse(w, r, err.Error())

	case errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, services.ErrLoginFailed):
		badRequestResponse(w, r, err)

	case errors.As(err, &reqErr):
		// Upstream 4xx with the server's own message, surfaced verbatim.
		errorResponse(w, r, reqErr.Status, reqErr.Message)

	case errors.Is(err, mirror.ErrNotInMirror),
		errors.Is(err, services.ErrNotFound):
		notFoundResponse(w, r)

	case errors.Is(err, backend.ErrUnreachable),
		errors.Is(err, backend.ErrServerFault):
		badGatewayResponse(w, r, err)

	default:
		serverErrorResponse(w, r, err)
	}
}

// filterFromQuery собирает фильтр из query-параметров списковых ручек.
func filterFromQuery(r *http.Request) filters.State {
	q := r.URL.Query()
	return filters.State{
		SearchTerm: q.Get("search"),
		Status:     q.Get("status"),
		Year:       q.Get("year"),
	}
}
