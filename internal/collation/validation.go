package collation

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/evm-node/internal/model"
)

var errInconsistentValidationData = errors.New("inconsistent validation data")

// checkValidationData verifies that data was taken at the relay parent of req and
// that its message queues are well ordered.
func checkValidationData(req model.CollationRequest, data *model.ValidationData) error {
	if data.RelayParentNumber != req.RelayParentNumber {
		return fmt.Errorf("%w: relay parent number %d, want %d",
			errInconsistentValidationData, data.RelayParentNumber, req.RelayParentNumber)
	}
	if data.RelayParentStorageRoot != req.RelayParentStorageRoot {
		return fmt.Errorf("%w: relay parent storage root %s, want %s",
			errInconsistentValidationData, data.RelayParentStorageRoot, req.RelayParentStorageRoot)
	}

	var last uint32
	for i, msg := range data.DownwardMessages {
		if msg.SentAt < last || msg.SentAt > data.RelayParentNumber {
			return fmt.Errorf("%w: downward message %d sent at %d", errInconsistentValidationData, i, msg.SentAt)
		}
		last = msg.SentAt
	}

	for sender, msgs := range data.HorizontalMessages {
		last = 0
		for i, msg := range msgs {
			if msg.SentAt < last || msg.SentAt > data.RelayParentNumber {
				return fmt.Errorf("%w: horizontal message %d from %d sent at %d",
					errInconsistentValidationData, i, sender, msg.SentAt)
			}
			last = msg.SentAt
		}
	}
	return nil
}
