package transport

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/eviction"
	"github.com/goodnatureofminers/evm-node/internal/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

type submitTransactionRequest struct {
	Raw hexutil.Bytes `json:"raw"`
}

type filterRequest struct {
	Kind      eviction.FilterKind `json:"kind"`
	FromBlock *hexutil.Big        `json:"fromBlock,omitempty"`
	ToBlock   *hexutil.Big        `json:"toBlock,omitempty"`
	Addresses []common.Address    `json:"addresses,omitempty"`
	Topics    [][]common.Hash     `json:"topics,omitempty"`
}

type filterResponse struct {
	ID        eviction.FilterID   `json:"id"`
	Kind      eviction.FilterKind `json:"kind"`
	CreatedAt uint64              `json:"createdAt"`
	FromBlock *hexutil.Big        `json:"fromBlock,omitempty"`
	ToBlock   *hexutil.Big        `json:"toBlock,omitempty"`
	Addresses []common.Address    `json:"addresses,omitempty"`
	Topics    [][]common.Hash     `json:"topics,omitempty"`
}

type mappingResponse struct {
	EthereumHash common.Hash    `json:"ethereumHash"`
	ChainHash    common.Hash    `json:"chainHash"`
	Number       hexutil.Uint64 `json:"number"`
}

type pendingTransaction struct {
	Hash  common.Hash    `json:"hash"`
	Nonce hexutil.Uint64 `json:"nonce"`
	Gas   hexutil.Uint64 `json:"gas"`
}

// ChainHandler serves transaction submission, filter installation and the
// pending transaction cache.
type ChainHandler struct {
	txs      TransactionSubmitter
	chain    BestBlockSource
	filters  FilterRegistry
	pending  PendingSource
	mappings MappingSource
	logger   *zap.Logger
}

func NewChainHandler(
	txs TransactionSubmitter,
	chain BestBlockSource,
	filters FilterRegistry,
	pending PendingSource,
	mappings MappingSource,
	logger *zap.Logger,
) (*ChainHandler, error) {
	if txs == nil {
		return nil, errors.New("transaction submitter is required")
	}
	if chain == nil {
		return nil, errors.New("best block source is required")
	}
	if filters == nil {
		return nil, errors.New("filter registry is required")
	}
	if pending == nil {
		return nil, errors.New("pending source is required")
	}
	if mappings == nil {
		return nil, errors.New("mapping source is required")
	}
	return &ChainHandler{
		txs:      txs,
		chain:    chain,
		filters:  filters,
		pending:  pending,
		mappings: mappings,
		logger:   logger.Named("chain_handler"),
	}, nil
}

func (h *ChainHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodPost, "/v1/transactions", h.SubmitTransaction},
		{http.MethodGet, "/v1/transactions/pending", h.PendingTransactions},
		{http.MethodPost, "/v1/filters", h.InstallFilter},
		{http.MethodGet, "/v1/filters/{id}", h.GetFilter},
		{http.MethodDelete, "/v1/filters/{id}", h.UninstallFilter},
		{http.MethodGet, "/v1/mappings/{hash}", h.GetMapping},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", route.method, route.pattern, err)
		}
	}
	return nil
}

// SubmitTransaction decodes a binary encoded transaction and hands it to the pool.
func (h *ChainHandler) SubmitTransaction(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req submitTransactionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(req.Raw); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode transaction: %w", err), "")
		return
	}
	if err := h.txs.Add(tx); err != nil {
		h.logger.Debug("transaction rejected", zap.Stringer("hash", tx.Hash()), zap.Error(err))
		writeError(w, http.StatusUnprocessableEntity, err, "rejected")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]common.Hash{"hash": tx.Hash()})
}

func (h *ChainHandler) PendingTransactions(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	txs := h.pending.All()
	out := make([]pendingTransaction, len(txs))
	for i, tx := range txs {
		out[i] = pendingTransaction{
			Hash:  tx.Hash(),
			Nonce: hexutil.Uint64(tx.Nonce()),
			Gas:   hexutil.Uint64(tx.Gas()),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// InstallFilter registers a filter stamped with the current best block height.
func (h *ChainHandler) InstallFilter(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req filterRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}
	switch req.Kind {
	case eviction.FilterLogs, eviction.FilterBlocks, eviction.FilterPendingTransactions:
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown filter kind %q", req.Kind), "")
		return
	}

	best, err := h.chain.BestBlock(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err, "")
		return
	}

	criteria := ethereum.FilterQuery{
		FromBlock: (*big.Int)(req.FromBlock),
		ToBlock:   (*big.Int)(req.ToBlock),
		Addresses: req.Addresses,
		Topics:    req.Topics,
	}
	id := h.filters.Install(req.Kind, criteria, best.Number)
	writeJSON(w, http.StatusOK, filterResponse{
		ID:        id,
		Kind:      req.Kind,
		CreatedAt: best.Number,
		FromBlock: req.FromBlock,
		ToBlock:   req.ToBlock,
		Addresses: req.Addresses,
		Topics:    req.Topics,
	})
}

func (h *ChainHandler) GetFilter(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	id := eviction.FilterID(params["id"])
	entry, ok := h.filters.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("filter %s not found", id), "")
		return
	}
	criteria := entry.Value.Criteria
	writeJSON(w, http.StatusOK, filterResponse{
		ID:        id,
		Kind:      entry.Value.Kind,
		CreatedAt: entry.CreatedAt,
		FromBlock: (*hexutil.Big)(criteria.FromBlock),
		ToBlock:   (*hexutil.Big)(criteria.ToBlock),
		Addresses: criteria.Addresses,
		Topics:    criteria.Topics,
	})
}

func (h *ChainHandler) UninstallFilter(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	removed := h.filters.Uninstall(eviction.FilterID(params["id"]))
	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

// GetMapping resolves the chain block carrying the given EVM block hash.
func (h *ChainHandler) GetMapping(w http.ResponseWriter, r *http.Request, params map[string]string) {
	raw := params["hash"]
	var hash common.Hash
	if err := hash.UnmarshalText([]byte(raw)); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid hash %q: %w", raw, err), "")
		return
	}
	mapping, err := h.mappings.MappingByEthereumHash(r.Context(), hash)
	switch {
	case errors.Is(err, model.ErrMappingNotFound):
		writeError(w, http.StatusNotFound, err, "")
	case err != nil:
		h.logger.Error("mapping lookup", zap.Stringer("hash", hash), zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, err, "")
	default:
		writeJSON(w, http.StatusOK, mappingResponse{
			EthereumHash: mapping.EthereumHash,
			ChainHash:    mapping.ChainHash,
			Number:       hexutil.Uint64(mapping.Number),
		})
	}
}
