package platform_fee_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	"github.com/tunderatti-ops/FarmDirect/internal/generated/dto"
	"github.com/tunderatti-ops/FarmDirect/internal/service/platform"
)

const principalHeader = "X-Farmdirect-Principal"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := entities.Principal(r.Header.Get(principalHeader))
	if caller == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var feeUpdateDTO dto.PlatformFeeUpdate
	err := json.NewDecoder(r.Body).Decode(&feeUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.SetPlatformFee(r.Context(), caller, feeUpdateDTO.FeeRateBps)
	if err != nil {
		switch {
		case errors.Is(err, platform.ErrNotAuthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, platform.ErrInvalidFeeRate):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
