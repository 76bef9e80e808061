// Package ledgerdelivery manages delivery layer of bank balances.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/pkg/errorspkg"
	"github.com/go-petr/bank-ledger/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	AddCoins(ctx context.Context, id uuid.UUID, amount decimal.Decimal) domain.Result
	RemoveCoins(ctx context.Context, id uuid.UUID, amount decimal.Decimal) domain.Result
	SetCoins(ctx context.Context, id uuid.UUID, amount decimal.Decimal) domain.Result
	Get(ctx context.Context, id uuid.UUID) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

var errInvalidAmount = errors.New("amount must be a decimal number")

type uriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type accountResponse struct {
	domain.Account
	FormattedCoins    string `json:"formatted_coins"`
	FormattedCurrency string `json:"formatted_currency"`
}

type resultData struct {
	Result domain.Result `json:"result"`
}

type resultResponse struct {
	Data resultData `json:"data,omitempty"`
}

// Deposit handles http request to add coins to an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.mutate(gctx, h.service.AddCoins)
}

// Withdraw handles http request to remove coins from an account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.mutate(gctx, h.service.RemoveCoins)
}

// SetBalance handles http request to replace an account balance.
func (h *Handler) SetBalance(gctx *gin.Context) {
	h.mutate(gctx, h.service.SetCoins)
}

func (h *Handler) mutate(gctx *gin.Context, op func(context.Context, uuid.UUID, decimal.Decimal) domain.Result) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(errInvalidAmount))

		return
	}

	result := op(ctx, id, amount)

	gctx.JSON(statusCode(result.Status), resultResponse{Data: resultData{result}})
}

// Get handles http request to get a single account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	acc, err := h.service.Get(ctx, id)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: newAccountResponse(acc)})
}

// List handles http request to list all persisted accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	accounts, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	items := make([]accountResponse, 0, len(accounts))
	for _, acc := range accounts {
		items = append(items, newAccountResponse(acc))
	}

	gctx.JSON(http.StatusOK, web.Response{Data: items})
}

// Delete handles http request to remove an account from storage.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}

func bindID(gctx *gin.Context) (uuid.UUID, bool) {
	l := zerolog.Ctx(gctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return uuid.UUID{}, false
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return uuid.UUID{}, false
	}

	return id, true
}

func newAccountResponse(acc domain.Account) accountResponse {
	return accountResponse{
		Account:           acc,
		FormattedCoins:    acc.FormattedCoins(),
		FormattedCurrency: acc.FormattedCurrency(),
	}
}

func statusCode(s domain.Status) int {
	switch s {
	case domain.StatusSuccess:
		return http.StatusOK
	case domain.StatusNotNegative:
		return http.StatusBadRequest
	case domain.StatusNotEnough, domain.StatusMaxBalanceExceed:
		return http.StatusUnprocessableEntity
	case domain.StatusNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
