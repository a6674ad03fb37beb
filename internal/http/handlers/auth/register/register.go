package register

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	registerservice "accounts/internal/core/services/register"
	"accounts/internal/http/handlers/response"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[registerservice.Input, registerservice.Result]
}

func New(service services.Service[registerservice.Input, registerservice.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

// ReceiveNews replaces the source form's truthy coercion with an explicit
// mapping: JSON true/false and the strings "true"/"false" are accepted,
// everything else is rejected. Absent means false.
type ReceiveNews bool

func (b *ReceiveNews) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", `"true"`:
		*b = true
	case "false", `"false"`, "null":
		*b = false
	default:
		return errors.New("must be a boolean or \"true\"/\"false\"")
	}
	return nil
}

type Input struct {
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirmPassword"`
	Country         string      `json:"country"`
	ReceiveNews     ReceiveNews `json:"receiveNews"`
	Terms           bool        `json:"terms"`
}

type Result struct {
	Success bool `json:"success"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FirstName, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.LastName, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Phone, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
		validation.Field(&i.ConfirmPassword, validation.Required, validation.By(i.matchesPassword)),
		validation.Field(&i.Country, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Terms, validation.Required.Error("must be accepted")),
	)
}

func (i Input) matchesPassword(value interface{}) error {
	confirmation, _ := value.(string)
	if confirmation != i.Password {
		return errors.New("must match the password")
	}
	return nil
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

	_, err := h.service.Run(
		r.Context(),
		registerservice.Input{
			FirstName:   strings.TrimSpace(input.FirstName),
			LastName:    strings.TrimSpace(input.LastName),
			Email:       c.NewEmail(input.Email),
			Phone:       c.NewPhone(input.Phone),
			Password:    user.RawPassword(input.Password),
			Country:     input.Country,
			ReceiveNews: bool(input.ReceiveNews),
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusBadRequest)
		return
	}
	if errors.Is(err, user.ErrPhoneAlreadyExists) {
		response.RenderError(rw, "phone already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Success: true}, http.StatusCreated)
}
