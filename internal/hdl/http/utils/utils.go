package utils

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/hdl"
	"github.com/JMURv/zedasignal/internal/hdl/validation"
	"github.com/JMURv/zedasignal/internal/repo/s3"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var successMessages = map[int]string{
	http.StatusOK:             "Resource fetched successfully.",
	http.StatusCreated:        "Resource created successfully.",
	http.StatusAccepted:       "Resource updated successfully.",
	http.StatusNoContent:      "Resource deleted successfully.",
	http.StatusResetContent:   "Data reset to its initial state.",
	http.StatusPartialContent: "Partial content retrieved successfully.",
}

var errorCodes = map[int]string{
	http.StatusBadRequest:            "BAD_REQUEST",
	http.StatusUnauthorized:          "UNAUTHORIZED",
	http.StatusPaymentRequired:       "PAYMENT_REQUIRED",
	http.StatusForbidden:             "FORBIDDEN",
	http.StatusNotFound:              "NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusNotAcceptable:         "NOT_ACCEPTABLE",
	http.StatusRequestTimeout:        "REQUEST_TIMEOUT",
	http.StatusConflict:              "CONFLICT",
	http.StatusGone:                  "GONE",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusTooManyRequests:       "TOO_MANY_REQUESTS",
	http.StatusInternalServerError:   "INTERNAL_SERVER_ERROR",
	http.StatusNotImplemented:        "NOT_IMPLEMENTED",
	http.StatusBadGateway:            "BAD_GATEWAY",
	http.StatusServiceUnavailable:    "SERVICE_UNAVAILABLE",
	http.StatusGatewayTimeout:        "GATEWAY_TIMEOUT",
}

var errorMessages = map[int]string{
	http.StatusBadRequest:            "Bad request. The request parameters are invalid.",
	http.StatusUnauthorized:          "Unauthorized. Authentication is required to access this resource.",
	http.StatusPaymentRequired:       "Payment required. Payment is needed to access this resource.",
	http.StatusForbidden:             "Forbidden. You don't have permission to access this resource.",
	http.StatusNotFound:              "Not found. The requested resource does not exist.",
	http.StatusMethodNotAllowed:      "Method not allowed. The HTTP method is not allowed for this resource.",
	http.StatusNotAcceptable:         "Not acceptable. The requested resource can't produce the desired content.",
	http.StatusRequestTimeout:        "Request timeout. The server timed out waiting for the request.",
	http.StatusConflict:              "Conflict. There's a conflict with the current state of the resource.",
	http.StatusGone:                  "Gone. The requested resource has been permanently removed.",
	http.StatusRequestEntityTooLarge: "Payload too large. The request payload is too large.",
	http.StatusUnsupportedMediaType:  "Unsupported media type. The request's media type is not supported.",
	http.StatusTooManyRequests:       "Too many requests. You have exceeded the rate limit for this resource.",
	http.StatusInternalServerError:   "Internal server error. An unexpected server error occurred.",
	http.StatusNotImplemented:        "Not implemented. The server does not support the functionality required.",
	http.StatusBadGateway:            "Bad gateway. The server received an invalid response from an upstream server.",
	http.StatusServiceUnavailable:    "Service unavailable. The server is currently unable to handle the request.",
	http.StatusGatewayTimeout:        "Gateway timeout. The server timed out waiting for an upstream server's response.",
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  any    `json:"result"`
}

type ErrorItem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

type ErrorsResponse struct {
	Success bool        `json:"success"`
	Error   []ErrorItem `json:"error"`
}

// SuccessResponse writes the success envelope. An empty message falls back to the status default.
func SuccessResponse(w http.ResponseWriter, statusCode int, message string, data any) {
	if message == "" {
		message = successMessages[statusCode]
	}
	if data == nil {
		data = struct{}{}
	}

	writeJSON(
		w, statusCode, &Response{
			Success: true,
			Message: message,
			Result:  data,
		},
	)
}

func StatusResponse(w http.ResponseWriter, statusCode int, message string) {
	SuccessResponse(w, statusCode, message, nil)
}

// ErrResponse writes a single item error envelope. Internal errors never expose err text.
func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	details := ""
	if err != nil && statusCode < http.StatusInternalServerError {
		details = err.Error()
	}

	ErrItemsResponse(
		w, statusCode, []ErrorItem{
			{
				Code:    errorCodes[statusCode],
				Message: errorMessages[statusCode],
				Details: details,
			},
		},
	)
}

func ErrItemsResponse(w http.ResponseWriter, statusCode int, items []ErrorItem) {
	writeJSON(
		w, statusCode, &ErrorsResponse{
			Success: false,
			Error:   items,
		},
	)
}

// ValidationErrResponse writes one error item per failing field.
func ValidationErrResponse(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	items := make([]ErrorItem, 0, len(verrs))
	for _, fe := range verrs {
		items = append(
			items, ErrorItem{
				Code:    errorCodes[http.StatusBadRequest],
				Message: fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()),
				Details: fieldDetails(fe),
			},
		)
	}

	ErrItemsResponse(w, http.StatusBadRequest, items)
}

func fieldDetails(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Value must be one of: %s.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value for rule %q.", fe.Tag())
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Debug("failed to encode response", zap.Error(err))
	}
}

func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		zap.L().Debug("failed to decode request", zap.String("path", r.URL.Path), zap.Error(err))
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validation.Struct(dst); err != nil {
		ValidationErrResponse(w, err)
		return false
	}

	return true
}

// ParseMultipartData decodes the JSON "data" form field into dst and validates it.
func ParseMultipartData(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := r.ParseMultipartForm(config.MaxMemory); err != nil {
		zap.L().Debug("failed to parse multipart form", zap.Error(err))
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := json.Unmarshal([]byte(r.FormValue("data")), dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validation.Struct(dst); err != nil {
		ValidationErrResponse(w, err)
		return false
	}

	return true
}

// ParseFileField fills req from an optional multipart file. A missing file leaves req empty.
func ParseFileField(r *http.Request, field string, req *s3.UploadFileRequest) error {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil
		}
		return hdl.ErrDecodeRequest
	}
	defer func() {
		if err := file.Close(); err != nil {
			zap.L().Debug("failed to close file", zap.String("field", field), zap.Error(err))
		}
	}()

	if header.Size > config.MaxMemory {
		return hdl.ErrFileTooLarge
	}

	data, err := io.ReadAll(file)
	if err != nil {
		zap.L().Error("failed to read file", zap.String("field", field), zap.Error(err))
		return hdl.ErrInternal
	}

	req.File = data
	req.Filename = header.Filename
	req.ContentType = header.Header.Get("Content-Type")
	return nil
}

func ParsePaginationValues(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = config.DefaultPage
	}

	size, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || size < 1 {
		size = config.DefaultSize
	}
	if size > config.MaxSize {
		size = config.MaxSize
	}

	return page, size
}

// ParseFiltersByURL collects every non-paging query parameter.
func ParseFiltersByURL(r *http.Request) map[string]any {
	filters := make(map[string]any)
	for k, v := range r.URL.Query() {
		if k == "page" || k == "page_size" || len(v) == 0 || v[0] == "" {
			continue
		}
		filters[k] = v[0]
	}
	return filters
}

func SetAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.AccessCookieName,
			Value:    access,
			Path:     "/",
			Expires:  time.Now().Add(config.AccessTokenDuration),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	)
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    refresh,
			Path:     "/",
			Expires:  time.Now().Add(config.RefreshTokenDuration),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	)
}

func ClearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{config.AccessCookieName, config.RefreshCookieName} {
		http.SetCookie(
			w, &http.Cookie{
				Name:     name,
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
				Secure:   true,
				SameSite: http.SameSiteLaxMode,
			},
		)
	}
}
