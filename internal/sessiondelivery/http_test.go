package sessiondelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/bank-ledger/pkg/configpkg"
	"github.com/go-petr/bank-ledger/pkg/passpkg"
	"github.com/go-petr/bank-ledger/pkg/randompkg"
	"github.com/go-petr/bank-ledger/pkg/tokenpkg"
	"github.com/go-petr/bank-ledger/pkg/web"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	password := randompkg.String(12)

	hash, err := passpkg.Hash(password)
	require.NoError(t, err)

	config := configpkg.Config{
		AdminUsername:       "admin",
		AdminPasswordHash:   hash,
		AccessTokenDuration: time.Minute,
	}

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	testCases := []struct {
		name     string
		body     gin.H
		wantCode int
	}{
		{
			name:     "OK",
			body:     gin.H{"username": "admin", "password": password},
			wantCode: http.StatusOK,
		},
		{
			name:     "WrongUsername",
			body:     gin.H{"username": "intruder", "password": password},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "WrongPassword",
			body:     gin.H{"username": "admin", "password": "wrong"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "MissingPassword",
			body:     gin.H{"username": "admin"},
			wantCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gin.SetMode(gin.TestMode)

			handler := NewHandler(config, tokenMaker)

			server := gin.New()
			server.POST("/sessions", handler.Login)

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodPost, "/sessions", bytes.NewReader(body))
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantCode, recorder.Code)

			if tc.wantCode == http.StatusOK {
				var res web.Response
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				require.NotEmpty(t, res.AccessToken)

				payload, err := tokenMaker.VerifyToken(res.AccessToken)
				require.NoError(t, err)
				require.Equal(t, "admin", payload.Username)
			}
		})
	}
}
