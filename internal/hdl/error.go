package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")
var ErrFileTooLarge = errors.New("file too large")

var ErrFailedToGetUUID = errors.New("failed to get uid from context")
var ErrFailedToParseUUID = errors.New("failed to parse uuid")
var ErrNoToken = errors.New("authentication credentials were not provided")
var ErrPermissionDenied = errors.New("you do not have permission to perform this action")
var ErrRouteNotFound = errors.New("route not found")
var ErrMethodNotAllowed = errors.New("method not allowed")
