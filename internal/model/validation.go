package model

import "github.com/ethereum/go-ethereum/common"

// InboundDownwardMessage is a message sent by the relay chain to this chain.
type InboundDownwardMessage struct {
	SentAt uint32
	Msg    []byte
}

// InboundHrmpMessage is a horizontal message sent by another chain.
type InboundHrmpMessage struct {
	SentAt uint32
	Data   []byte
}

// ValidationData is the relay-chain snapshot a collation is authored against.
type ValidationData struct {
	RelayParentNumber      uint32
	RelayParentStorageRoot common.Hash
	MaxPoVSize             uint32
	DownwardMessages       []InboundDownwardMessage
	HorizontalMessages     map[uint32][]InboundHrmpMessage
}

// CollationRequest asks the collator to author a block for a relay-chain slot.
type CollationRequest struct {
	RelayParent            common.Hash
	RelayParentNumber      uint32
	RelayParentStorageRoot common.Hash
}

// CollationOutcome describes the result of one collation attempt.
type CollationOutcome string

var (
	// CollationAuthored marks a slot for which a block was built, imported and announced.
	CollationAuthored CollationOutcome = "authored"
	// CollationSkipped marks a slot without usable validation data.
	CollationSkipped CollationOutcome = "skipped"
	// CollationMissed marks a slot whose block could not be built or imported.
	CollationMissed CollationOutcome = "missed"
)
