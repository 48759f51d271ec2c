package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/zedasignal/internal/auth"
	"github.com/JMURv/zedasignal/internal/auth/captcha"
	"github.com/JMURv/zedasignal/internal/auth/jwt"
	"github.com/JMURv/zedasignal/internal/ctrl"
	"github.com/JMURv/zedasignal/internal/hdl"
	"github.com/JMURv/zedasignal/internal/hdl/http/utils"
	"github.com/JMURv/zedasignal/internal/notify"
	"github.com/JMURv/zedasignal/internal/sms/termii"
	"go.uber.org/zap"
)

var statusByErr = []struct {
	err    error
	status int
}{
	{ctrl.ErrNotFound, http.StatusNotFound},
	{ctrl.ErrNoScreening, http.StatusNotFound},
	{ctrl.ErrScreeningQueued, http.StatusNotFound},
	{ctrl.ErrAlreadyExists, http.StatusConflict},
	{ctrl.ErrUserInactive, http.StatusForbidden},
	{auth.ErrInvalidToken, http.StatusUnauthorized},
	{auth.ErrTokenRevoked, http.StatusUnauthorized},
	{jwt.ErrInvalidToken, http.StatusUnauthorized},
	{ctrl.ErrInvalidCode, http.StatusBadRequest},
	{ctrl.ErrCodeUsed, http.StatusBadRequest},
	{ctrl.ErrUnknownEmail, http.StatusBadRequest},
	{ctrl.ErrInvalidPhone, http.StatusBadRequest},
	{ctrl.ErrUnknownPlan, http.StatusBadRequest},
	{auth.ErrInvalidCredentials, http.StatusBadRequest},
	{captcha.ErrVerificationFailed, http.StatusBadRequest},
	{captcha.ErrValidationFailed, http.StatusBadRequest},
	{termii.ErrGateway, http.StatusBadRequest},
	{notify.ErrNoEmail, http.StatusBadRequest},
	{notify.ErrNoPhone, http.StatusBadRequest},
	{hdl.ErrDecodeRequest, http.StatusBadRequest},
	{hdl.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
}

func errStatus(err error) int {
	for _, s := range statusByErr {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// fail maps a layer error to its envelope. Unknown errors become a generic 500.
func fail(w http.ResponseWriter, op string, err error) {
	status := errStatus(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, status, hdl.ErrInternal)
		return
	}

	utils.ErrResponse(w, status, err)
}
