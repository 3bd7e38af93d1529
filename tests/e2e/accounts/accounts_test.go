package accounts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nvoronina/bankledger/internal/testutil"
	"github.com/nvoronina/bankledger/tests/e2e"
)

const (
	AccountsURL = "/api/accounts"
	DepositURL  = "/api/accounts/deposit"
	WithdrawURL = "/api/accounts/withdraw"
)

func Test_Accounts(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	doPost := func(t *testing.T, url string, data any) *http.Response {
		t.Helper()

		d, err := json.Marshal(data)
		require.NoError(t, err, "failed to marshal request")
		resp, err := http.Post(url, "application/json", bytes.NewReader(d))
		require.NoError(t, err, "failed to send request")

		return resp
	}

	e2e.ServeInTx(pg.Pool, t, func(tx pgx.Tx, srvURL string, s e2e.Services) {
		customer, err := s.CustomerService.CreateCustomer(t.Context(), "Tomas", "", "Berg")
		require.NoError(t, err)

		t.Run("open account", func(t *testing.T) {
			testutil.InTx(tx, t, func(_ pgx.Tx) {
				resp := doPost(t, srvURL+AccountsURL, map[string]any{
					"customerId": customer.ID,
					"balance":    23.50,
				})
				defer resp.Body.Close() // nolint:errcheck
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code, body: %s", string(body))
				require.Contains(t, string(body), `"Successfully created new account."`)
				require.Contains(t, string(body), `"balance":23.5`)
			})
		})

		t.Run("open account unknown customer", func(t *testing.T) {
			testutil.InTx(tx, t, func(_ pgx.Tx) {
				resp := doPost(t, srvURL+AccountsURL, map[string]any{
					"customerId": customer.ID + 100500,
					"balance":    10,
				})
				defer resp.Body.Close() // nolint:errcheck
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				require.Equal(t, http.StatusBadRequest, resp.StatusCode)
				require.JSONEq(t, `{
					"error": "service_error",
					"message": "Account creation failed. Customer not found."
				}`, string(body), "not expected response body")
			})
		})

		t.Run("deposit then withdraw round trip", func(t *testing.T) {
			testutil.InTx(tx, t, func(_ pgx.Tx) {
				account, err := s.LedgerService.OpenAccount(t.Context(), customer.ID, decimal.RequireFromString("100.00"))
				require.NoError(t, err)

				resp := doPost(t, srvURL+DepositURL, map[string]any{"id": account.ID, "amount": 0.05})
				require.NoError(t, resp.Body.Close())
				require.Equal(t, http.StatusOK, resp.StatusCode)

				resp = doPost(t, srvURL+WithdrawURL, map[string]any{"id": account.ID, "amount": 0.05})
				require.NoError(t, resp.Body.Close())
				require.Equal(t, http.StatusOK, resp.StatusCode)

				balance, err := s.LedgerService.GetBalance(t.Context(), account.ID)
				require.NoError(t, err)
				require.True(t, balance.Equal(decimal.RequireFromString("100.00")), "round trip must be exact, got %s", balance)
			})
		})

		t.Run("withdraw insufficient fail", func(t *testing.T) {
			testutil.InTx(tx, t, func(_ pgx.Tx) {
				account, err := s.LedgerService.OpenAccount(t.Context(), customer.ID, decimal.RequireFromString("100.00"))
				require.NoError(t, err)

				resp := doPost(t, srvURL+WithdrawURL, map[string]any{"id": account.ID, "amount": 150.00})
				defer resp.Body.Close() // nolint:errcheck
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				require.Equalf(t, http.StatusBadRequest, resp.StatusCode, "not expected code, body: %s", string(body))
				require.Contains(t, string(body), "150", "requested amount should be reported")
				require.Contains(t, string(body), "100", "current balance should be reported")

				balance, err := s.LedgerService.GetBalance(t.Context(), account.ID)
				require.NoError(t, err)
				require.True(t, balance.Equal(decimal.RequireFromString("100.00")), "failed withdraw must not change balance")
			})
		})

		t.Run("get balance", func(t *testing.T) {
			testutil.InTx(tx, t, func(_ pgx.Tx) {
				account, err := s.LedgerService.OpenAccount(t.Context(), customer.ID, decimal.RequireFromString("23.45"))
				require.NoError(t, err)

				resp, err := http.Get(fmt.Sprintf("%s%s/%d/balance", srvURL, AccountsURL, account.ID))
				require.NoError(t, err)
				defer resp.Body.Close() // nolint:errcheck
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				require.Equal(t, http.StatusOK, resp.StatusCode)
				require.Contains(t, string(body), `"balance":23.45`)
			})
		})
	})
}
