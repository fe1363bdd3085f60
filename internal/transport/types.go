package transport

import (
	"context"
	"encoding/json"
	"net/http"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/eviction"
	"github.com/goodnatureofminers/evm-node/internal/model"
	"github.com/goodnatureofminers/evm-node/internal/precompile"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// SealSubmitter queues manual seal commands.
	SealSubmitter interface {
		Submit(cmd model.SealCommand) error
	}
	// StatusSource reports the node's current view of the chain.
	StatusSource interface {
		Status(ctx context.Context) (NodeStatus, error)
	}
	PrecompileExecutor interface {
		Execute(addr common.Address, input []byte, gasLimit *uint64, ctx *precompile.Context) (precompile.Output, bool, error)
	}
	HealthChecker interface {
		Healthy() bool
	}
	TransactionSubmitter interface {
		Add(tx *types.Transaction) error
	}
	BestBlockSource interface {
		BestBlock(ctx context.Context) (model.BlockID, error)
	}
	FilterRegistry interface {
		Install(kind eviction.FilterKind, criteria ethereum.FilterQuery, height uint64) eviction.FilterID
		Get(id eviction.FilterID) (eviction.Entry[eviction.Filter], bool)
		Uninstall(id eviction.FilterID) bool
	}
	PendingSource interface {
		All() []*types.Transaction
	}
	MappingSource interface {
		MappingByEthereumHash(ctx context.Context, hash common.Hash) (model.BlockMapping, error)
	}
)

// NodeStatus is the payload of the status endpoint.
type NodeStatus struct {
	Role       string        `json:"role"`
	Sealing    string        `json:"sealing,omitempty"`
	Authorship string        `json:"authorship,omitempty"`
	Best       model.BlockID `json:"best"`
	Finalized  uint64        `json:"finalized"`
	Healthy    bool          `json:"healthy"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error, reason string) {
	writeJSON(w, code, errorResponse{Error: err.Error(), Reason: reason})
}
