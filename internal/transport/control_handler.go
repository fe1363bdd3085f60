// Package transport exposes the node's HTTP control surface and gRPC health service.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/evm-node/internal/model"
	"github.com/goodnatureofminers/evm-node/internal/precompile"
	"github.com/goodnatureofminers/evm-node/internal/sealing"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

const (
	maxBodyBytes       = 1 << 20
	defaultSealTimeout = 30 * time.Second
)

type sealRequest struct {
	CreateEmpty bool         `json:"createEmpty"`
	Finalize    bool         `json:"finalize"`
	ParentHash  *common.Hash `json:"parentHash,omitempty"`
	// Wait blocks the request until the authorship loop reports the outcome.
	Wait bool `json:"wait"`
}

type sealResponse struct {
	Status    string         `json:"status"`
	Block     *model.BlockID `json:"block,omitempty"`
	Finalized bool           `json:"finalized,omitempty"`
}

type precompileRequest struct {
	Input    hexutil.Bytes   `json:"input"`
	GasLimit *hexutil.Uint64 `json:"gasLimit,omitempty"`
	Caller   common.Address  `json:"caller"`
	Value    *uint256.Int    `json:"value,omitempty"`
}

type precompileResponse struct {
	Status  precompile.ExitStatus `json:"status"`
	Output  hexutil.Bytes         `json:"output"`
	GasUsed hexutil.Uint64        `json:"gasUsed"`
}

// ControlHandler serves the node's HTTP control endpoints. sealer is nil
// unless the node seals manually.
type ControlHandler struct {
	sealer      SealSubmitter
	status      StatusSource
	precompiles PrecompileExecutor
	sealTimeout time.Duration
	logger      *zap.Logger
}

func NewControlHandler(sealer SealSubmitter, status StatusSource, precompiles PrecompileExecutor, logger *zap.Logger) (*ControlHandler, error) {
	if status == nil {
		return nil, errors.New("status source is required")
	}
	if precompiles == nil {
		return nil, errors.New("precompile executor is required")
	}
	return &ControlHandler{
		sealer:      sealer,
		status:      status,
		precompiles: precompiles,
		sealTimeout: defaultSealTimeout,
		logger:      logger.Named("control_handler"),
	}, nil
}

// Register mounts the control endpoints on the gateway mux.
func (h *ControlHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodPost, "/v1/seal", h.Seal},
		{http.MethodGet, "/v1/status", h.Status},
		{http.MethodPost, "/v1/precompiles/{address}", h.CallPrecompile},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", route.method, route.pattern, err)
		}
	}
	return nil
}

// Seal queues a manual seal command. It never waits for queue space: a full
// queue is reported as 429.
func (h *ControlHandler) Seal(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if h.sealer == nil {
		writeError(w, http.StatusConflict, errors.New("node is not sealing manually"), "")
		return
	}

	var req sealRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}

	cmd := model.SealCommand{
		CreateEmpty: req.CreateEmpty,
		Finalize:    req.Finalize,
		ParentHash:  req.ParentHash,
	}
	var result chan model.SealResult
	if req.Wait {
		result = make(chan model.SealResult, 1)
		cmd.Result = result
	}

	if err := h.sealer.Submit(cmd); err != nil {
		if errors.Is(err, sealing.ErrQueueFull) {
			writeError(w, http.StatusTooManyRequests, err, "full")
			return
		}
		h.logger.Error("submit seal command", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, err, "")
		return
	}
	if !req.Wait {
		writeJSON(w, http.StatusAccepted, sealResponse{Status: "queued"})
		return
	}

	timer := time.NewTimer(h.sealTimeout)
	defer timer.Stop()
	select {
	case res := <-result:
		if res.Err != nil {
			writeError(w, http.StatusUnprocessableEntity, res.Err, "seal failed")
			return
		}
		block := res.Block
		writeJSON(w, http.StatusOK, sealResponse{Status: "sealed", Block: &block, Finalized: res.Finalized})
	case <-timer.C:
		writeJSON(w, http.StatusAccepted, sealResponse{Status: "queued"})
	case <-r.Context().Done():
	}
}

func (h *ControlHandler) Status(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	status, err := h.status.Status(r.Context())
	if err != nil {
		h.logger.Warn("node status", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, err, "")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// CallPrecompile runs a precompile directly, outside of any transaction.
func (h *ControlHandler) CallPrecompile(w http.ResponseWriter, r *http.Request, params map[string]string) {
	raw := params["address"]
	if !common.IsHexAddress(raw) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid address %q", raw), "")
		return
	}
	addr := common.HexToAddress(raw)

	var req precompileRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}
	var gasLimit *uint64
	if req.GasLimit != nil {
		limit := uint64(*req.GasLimit)
		gasLimit = &limit
	}
	value := req.Value
	if value == nil {
		value = new(uint256.Int)
	}

	out, ok, err := h.precompiles.Execute(addr, req.Input, gasLimit, &precompile.Context{
		Address:       addr,
		Caller:        req.Caller,
		ApparentValue: value,
	})
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no precompile at %s", addr), "")
		return
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err, exitReason(err))
		return
	}
	writeJSON(w, http.StatusOK, precompileResponse{
		Status:  out.Status,
		Output:  out.Data,
		GasUsed: hexutil.Uint64(out.GasUsed),
	})
}

func exitReason(err error) string {
	switch {
	case errors.Is(err, precompile.ErrOutOfGas):
		return "out_of_gas"
	case errors.Is(err, precompile.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
