package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the id assigned to every served request.
const RequestIDHeader = "X-Request-Id"

// Err is an API error rendered as a JSON body with its status code.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// RegisterFunc registers fn on mux for method and pattern. Request fields tagged with
// `schema:"name"` are filled from the matched path wildcards and the URL query before fn
// is called; the response is written as JSON.
func RegisterFunc[Req, Resp any](logger *logrus.Logger, mux *http.ServeMux, method, pattern string, fn func(ctx context.Context, req *Req) (*Resp, error)) {
	wildcards := pathWildcards(pattern)
	mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		logger := logger.WithContext(r.Context()).WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		})
		requestsServed.WithLabelValues(pattern).Inc()

		req := new(Req)
		err := bind(r, wildcards, req)
		if err != nil {
			logger.WithError(err).Warn("Failed to bind request")
			writeErr(logger, w, err)
			return
		}

		resp, err := fn(r.Context(), req)
		if err != nil {
			writeErr(logger, w, err)
			return
		}

		writeJSON(logger, w, http.StatusOK, resp)
	})
}

func writeErr(logger *logrus.Entry, w http.ResponseWriter, err error) {
	apiErr := &Err{}
	if !errors.As(err, &apiErr) {
		logger.WithError(err).Error("Handler returned an unexpected error")
		apiErr = NewErrf(http.StatusInternalServerError, "Internal server error")
	}
	writeJSON(logger, w, apiErr.StatusCode, apiErr)
}

func writeJSON(logger *logrus.Entry, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		logger.WithError(err).Error("Failed to write response body")
	}
}

// bind decodes the query and the path wildcard values of r into req. Path values win
// over query parameters of the same name.
func bind(r *http.Request, wildcards []string, req any) error {
	values := url.Values{}
	for key, vals := range r.URL.Query() {
		values[key] = vals
	}
	for _, name := range wildcards {
		if v := r.PathValue(name); v != "" {
			values.Set(name, v)
		}
	}

	err := decoder.Decode(req, values)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return NewErrf(http.StatusBadRequest, "Invalid request: %s", err.Error())
	}
	keys := make([]string, 0, len(multi))
	for key := range multi {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var conversionErr schema.ConversionError
	if errors.As(multi[keys[0]], &conversionErr) {
		return NewErrf(http.StatusBadRequest, "Invalid value for '%s': expected %s", conversionErr.Key, typeName(conversionErr))
	}
	return NewErrf(http.StatusBadRequest, "Invalid value for '%s'", keys[0])
}

func typeName(err schema.ConversionError) string {
	if err.Type == nil {
		return "a valid value"
	}
	switch err.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	default:
		return "a valid " + err.Type.String()
	}
}

// pathWildcards returns the wildcard names of a ServeMux pattern such as
// "/accounts/{address}/transactions" or "/files/{path...}".
func pathWildcards(pattern string) []string {
	var names []string
	for _, segment := range strings.Split(pattern, "/") {
		if !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
			continue
		}
		name := strings.TrimSuffix(strings.Trim(segment, "{}"), "...")
		if name != "$" {
			names = append(names, name)
		}
	}
	return names
}
