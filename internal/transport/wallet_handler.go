package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/keys"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/txbuilder"
)

const maxRequestBody = 1 << 16

type (
	BalanceResponse struct {
		Balance uint64 `json:"balance"`
	}

	StatusResponse struct {
		Height uint32 `json:"height"`
		Peers  int    `json:"peers"`
		Synced bool   `json:"synced"`
	}

	PaymentResponse struct {
		TxID        string `json:"txid"`
		Direction   string `json:"direction"`
		Amount      uint64 `json:"amount"`
		Confirmed   bool   `json:"confirmed"`
		BlockHeight uint32 `json:"block_height,omitempty"`
	}

	SendRequest struct {
		Address string `json:"address" validate:"required"`
		Amount  uint64 `json:"amount" validate:"gt=0"`
	}

	SendResponse struct {
		TxID string `json:"txid"`
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

// WalletHandler serves the wallet REST endpoints.
type WalletHandler struct {
	wallet Wallet
	logger *zap.Logger
}

func NewWalletHandler(wallet Wallet, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{wallet: wallet, logger: logger}
}

// Register mounts the wallet routes on the gateway mux next to the generated ones.
func (h *WalletHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method, path string
		handler      gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/v1/wallet/balance", h.balance},
		{http.MethodGet, "/v1/wallet/payments", h.payments},
		{http.MethodGet, "/v1/wallet/status", h.status},
		{http.MethodPost, "/v1/wallet/send", h.send},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.path, r.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", r.method, r.path, err)
		}
	}
	return nil
}

func (h *WalletHandler) balance(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	balance, err := h.wallet.Balance(r.Context())
	if err != nil {
		h.fail(w, http.StatusInternalServerError, err)
		return
	}
	h.write(w, http.StatusOK, BalanceResponse{Balance: balance})
}

func (h *WalletHandler) payments(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	payments, err := h.wallet.Payments(r.Context())
	if err != nil {
		h.fail(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp := PaymentResponse{
			TxID:      p.TxID.String(),
			Direction: p.Direction.String(),
			Amount:    p.Amount,
			Confirmed: p.Confirmed(),
		}
		if p.Confirmed() {
			resp.BlockHeight = p.BlockHeight
		}
		out = append(out, resp)
	}
	h.write(w, http.StatusOK, out)
}

func (h *WalletHandler) status(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	s := h.wallet.Status()
	h.write(w, http.StatusOK, StatusResponse{Height: s.Height, Peers: s.Peers, Synced: s.Synced})
}

func (h *WalletHandler) send(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req SendRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	if err := validateRequest(req); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}

	txID, err := h.wallet.Send(r.Context(), req.Address, req.Amount)
	if err != nil {
		h.fail(w, sendStatus(err), err)
		return
	}
	h.logger.Info("payment requested", zap.String("address", req.Address), zap.Uint64("amount", req.Amount),
		zap.Stringer("txid", txID))
	h.write(w, http.StatusAccepted, SendResponse{TxID: txID.String()})
}

func sendStatus(err error) int {
	switch {
	case errors.Is(err, keys.ErrInvalidAddress), errors.Is(err, keys.ErrWrongNetwork):
		return http.StatusBadRequest
	case errors.Is(err, txbuilder.ErrInsufficientFunds), errors.Is(err, txbuilder.ErrZeroAmount):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *WalletHandler) fail(w http.ResponseWriter, code int, err error) {
	if code >= http.StatusInternalServerError {
		h.logger.Error("wallet request failed", zap.Error(err))
	}
	h.write(w, code, errorResponse{Error: err.Error()})
}

func (h *WalletHandler) write(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
