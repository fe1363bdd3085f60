package devchain

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goodnatureofminers/evm-node/internal/chain"
	"github.com/goodnatureofminers/evm-node/internal/clock"
	"github.com/goodnatureofminers/evm-node/internal/model"
	"github.com/goodnatureofminers/evm-node/pkg/safe"
	"go.uber.org/zap"
)

const (
	// DefaultMaxPoVSize matches the relay chain's default proof-of-validity budget.
	DefaultMaxPoVSize = 5 * 1024 * 1024
	// retainedSlots bounds how many past slots keep their validation data, and
	// how many announced block hashes are remembered.
	retainedSlots = 64
)

// Relay simulates a relay chain producing one collation request per slot. It
// serves validation data for recent slots and records announced blocks.
type Relay struct {
	logger *zap.Logger
	clock  clock.Clock
	slot   time.Duration

	mu        sync.Mutex
	number    uint32
	slots     map[common.Hash]*model.ValidationData
	order     []common.Hash
	downward  [][]byte
	announced []common.Hash
}

func NewRelay(slot time.Duration, clk clock.Clock, logger *zap.Logger) (*Relay, error) {
	if slot <= 0 {
		return nil, fmt.Errorf("relay slot duration must be positive, got %s", slot)
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Relay{
		logger: logger.Named("relay"),
		clock:  clk,
		slot:   slot,
		slots:  make(map[common.Hash]*model.ValidationData),
	}, nil
}

// QueueDownwardMessage queues msg for delivery in the next slot's validation data.
func (r *Relay) QueueDownwardMessage(msg []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.downward = append(r.downward, msg)
}

// CollationRequests emits one request per slot until ctx is done.
func (r *Relay) CollationRequests(ctx context.Context) <-chan model.CollationRequest {
	out := make(chan model.CollationRequest)
	go func() {
		defer close(out)
		for {
			if err := r.clock.Sleep(ctx, r.slot); err != nil {
				return
			}
			req, err := r.advance()
			if err != nil {
				r.logger.Error("relay stopped", zap.Error(err))
				return
			}
			select {
			case out <- req:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// advance produces the next relay block and the validation data collators see at it.
func (r *Relay) advance() (model.CollationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := safe.Uint32(uint64(r.number) + 1)
	if err != nil {
		return model.CollationRequest{}, fmt.Errorf("relay block number: %w", err)
	}
	r.number = next

	req := model.CollationRequest{
		RelayParent:            relayHash("block", next),
		RelayParentNumber:      next,
		RelayParentStorageRoot: relayHash("state", next),
	}
	data := &model.ValidationData{
		RelayParentNumber:      next,
		RelayParentStorageRoot: req.RelayParentStorageRoot,
		MaxPoVSize:             DefaultMaxPoVSize,
	}
	for _, msg := range r.downward {
		data.DownwardMessages = append(data.DownwardMessages, model.InboundDownwardMessage{SentAt: next, Msg: msg})
	}
	r.downward = nil

	r.slots[req.RelayParent] = data
	r.order = append(r.order, req.RelayParent)
	if len(r.order) > retainedSlots {
		delete(r.slots, r.order[0])
		r.order = r.order[1:]
	}
	return req, nil
}

func (r *Relay) ValidationData(_ context.Context, req model.CollationRequest) (*model.ValidationData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.slots[req.RelayParent]
	if !ok {
		return nil, fmt.Errorf("%w: relay parent %s", chain.ErrNoValidationData, req.RelayParent)
	}
	return data, nil
}

func (r *Relay) AnnounceBlock(_ context.Context, block *types.Block, data *model.ValidationData) error {
	r.mu.Lock()
	r.announced = append(r.announced, block.Hash())
	if len(r.announced) > retainedSlots {
		r.announced = r.announced[len(r.announced)-retainedSlots:]
	}
	r.mu.Unlock()

	r.logger.Info("block announced",
		zap.Uint64("number", block.NumberU64()),
		zap.Stringer("hash", block.Hash()),
		zap.Uint32("relay_parent_number", data.RelayParentNumber),
		zap.Int("downward_messages", len(data.DownwardMessages)),
	)
	return nil
}

// Announced returns the most recently announced block hashes, oldest first.
func (r *Relay) Announced() []common.Hash {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]common.Hash(nil), r.announced...)
}

func relayHash(kind string, number uint32) common.Hash {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], number)
	return crypto.Keccak256Hash([]byte(kind), buf[:])
}
