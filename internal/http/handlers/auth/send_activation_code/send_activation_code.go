package sendactivationcode

import (
	"errors"
	"net/http"
	e "verimail/internal/core/domain/errors"
	"verimail/internal/core/domain/identity"
	ratelimiter "verimail/internal/core/domain/rate_limiter"
	"verimail/internal/core/domain/user"
	"verimail/internal/core/services"
	sendactivationcode "verimail/internal/core/services/send_activation_code"
	"verimail/internal/http/handlers/response"
)

type Handler struct {
	service    services.Service[sendactivationcode.Input, sendactivationcode.Result]
	isTestMode bool
}

func New(
	service services.Service[sendactivationcode.Input, sendactivationcode.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(
		r.Context(),
		sendactivationcode.Input{},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	var deliveryErr *identity.ActivationCodeDeliveryError
	if errors.As(err, &deliveryErr) {
		response.RenderError(rw, "could not deliver activation code", http.StatusBadGateway)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode {
		rw.Header().Set("x-test-activation-code", string(result.Code))
	}
	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}
