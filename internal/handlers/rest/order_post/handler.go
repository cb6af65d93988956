package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	"github.com/tunderatti-ops/FarmDirect/internal/generated/dto"
	"github.com/tunderatti-ops/FarmDirect/internal/service/order"
	"github.com/tunderatti-ops/FarmDirect/pkg/logger"
)

const principalHeader = "X-Farmdirect-Principal"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := entities.Principal(r.Header.Get(principalHeader))
	if caller == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.OrderDraft{
		ProductID:        orderCreateDTO.ProductID,
		Quantity:         orderCreateDTO.Quantity,
		PricePerUnit:     orderCreateDTO.PricePerUnit,
		Seller:           entities.Principal(orderCreateDTO.Seller),
		DeliveryLocation: orderCreateDTO.DeliveryLocation,
		Currency:         entities.CurrencyType(orderCreateDTO.Currency),
	}

	id, err := h.service.PlaceOrder(r.Context(), caller, draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidProductID),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrInvalidPrice),
			errors.Is(err, order.ErrInvalidSeller),
			errors.Is(err, order.ErrInvalidLocation),
			errors.Is(err, order.ErrInvalidCurrency):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrInvalidBuyer):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, order.ErrInvalidPaymentAmount):
			w.WriteHeader(http.StatusPaymentRequired)
		case errors.Is(err, order.ErrOrderAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, order.ErrMaxOrdersExceeded):
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
