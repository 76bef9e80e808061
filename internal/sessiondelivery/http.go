// Package sessiondelivery manages delivery layer of admin sessions.
package sessiondelivery

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/bank-ledger/pkg/configpkg"
	"github.com/go-petr/bank-ledger/pkg/errorspkg"
	"github.com/go-petr/bank-ledger/pkg/passpkg"
	"github.com/go-petr/bank-ledger/pkg/tokenpkg"
	"github.com/go-petr/bank-ledger/pkg/web"
)

// ErrInvalidCredentials indicates a wrong admin username or password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Handler facilitates admin session delivery layer logic.
type Handler struct {
	config     configpkg.Config
	tokenMaker tokenpkg.Maker
}

// NewHandler returns admin session handler.
func NewHandler(config configpkg.Config, tokenMaker tokenpkg.Maker) Handler {
	return Handler{
		config:     config,
		tokenMaker: tokenMaker,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles http request to open an admin session.
func (h *Handler) Login(gctx *gin.Context) {
	l := zerolog.Ctx(gctx)

	var req loginRequest
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

	if req.Username != h.config.AdminUsername {
		gctx.JSON(http.StatusUnauthorized, web.Error(ErrInvalidCredentials))
		return
	}

	if err := passpkg.Check(req.Password, h.config.AdminPasswordHash); err != nil {
		gctx.JSON(http.StatusUnauthorized, web.Error(ErrInvalidCredentials))
		return
	}

	token, payload, err := h.tokenMaker.CreateToken(req.Username, h.config.AccessTokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		AccessToken:          token,
		AccessTokenExpiresAt: payload.ExpiredAt.Format(time.RFC3339),
	})
}
