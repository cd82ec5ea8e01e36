package signupwithemail

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "verimail/internal/core/domain/common"
	e "verimail/internal/core/domain/errors"
	"verimail/internal/core/domain/identity"
	ratelimiter "verimail/internal/core/domain/rate_limiter"
	"verimail/internal/core/domain/user"
	"verimail/internal/core/services"
	signupwithemail "verimail/internal/core/services/sign_up_with_email"
	"verimail/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service    services.Service[signupwithemail.Input, signupwithemail.Result]
	isTestMode bool
}

func New(
	service services.Service[signupwithemail.Input, signupwithemail.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Result struct {
	Token string `json:"token"`
}

type DeliveryFailedResult struct {
	Error string `json:"error"`
	Token string `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		signupwithemail.Input{Email: c.NewEmail(input.Email), Password: user.RawPassword(input.Password)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusUnprocessableEntity)
		return
	}
	var deliveryErr *identity.ActivationCodeDeliveryError
	if errors.As(err, &deliveryErr) {
		// The user and session are already committed at this point. The token
		// lets the client re-request a code via /auth/activate/send.
		response.Render(
			rw,
			DeliveryFailedResult{
				Error: "could not deliver activation code",
				Token: string(result.SessionToken),
			},
			http.StatusBadGateway,
		)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode {
		rw.Header().Set("x-test-activation-code", string(result.Code))
	}
	response.Render(rw, Result{Token: string(result.SessionToken)}, http.StatusCreated)
}
