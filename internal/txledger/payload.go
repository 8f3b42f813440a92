package txledger

import (
	"encoding/json"
	"fmt"

	"github.com/gabapcia/multisig/internal/pkg/validator"
)

// Type classifies what a transaction does when executed.
type Type string

const (
	TypeTransferFunds     Type = "transfer_funds"
	TypeUpgradeContract   Type = "upgrade_contract"
	TypeChangeParameter   Type = "change_parameter"
	TypeOther             Type = "other"
	TypeAddOwner          Type = "add_owner"
	TypeRemoveOwner       Type = "remove_owner"
	TypeChangeRequirement Type = "change_requirement"
)

// IsGovernance reports whether transactions of this type modify the owner
// registry instead of calling the destination.
func (t Type) IsGovernance() bool {
	switch t {
	case TypeAddOwner, TypeRemoveOwner, TypeChangeRequirement:
		return true
	}
	return false
}

// ParseType parses a transaction type name.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeTransferFunds, TypeUpgradeContract, TypeChangeParameter, TypeOther,
		TypeAddOwner, TypeRemoveOwner, TypeChangeRequirement:
		return t, nil
	}

	return "", fmt.Errorf("%w: unknown transaction type %q", ErrInvalidPayload, s)
}

// Payload is the type-specific body of a transaction. The set of variants is
// closed; every consumer switches over all of them.
type Payload interface {
	Type() Type
	isPayload()
}

// TransferFunds moves Value to the destination.
type TransferFunds struct {
	Memo string `json:"memo,omitempty" validate:"max=256"`
}

// UpgradeContract points the destination proxy at a new implementation.
type UpgradeContract struct {
	Implementation string `json:"implementation" validate:"required,eth_addr"`
	Data           string `json:"data,omitempty" validate:"omitempty,hexadecimal"` // optional initializer calldata
}

// ChangeParameter updates a named setting of the destination contract. Key
// and Value describe the change for reviewers; Data is the calldata sent.
type ChangeParameter struct {
	Key   string `json:"key" validate:"required,max=128"`
	Value string `json:"value"`
	Data  string `json:"data" validate:"required,hexadecimal"`
}

// Other carries arbitrary calldata for the destination.
type Other struct {
	Data string `json:"data,omitempty" validate:"omitempty,hexadecimal"`
}

// AddOwner adds an address to the owner set.
type AddOwner struct {
	Owner string `json:"owner" validate:"required,eth_addr"`
}

// RemoveOwner removes an address from the owner set.
type RemoveOwner struct {
	Owner string `json:"owner" validate:"required,eth_addr"`
}

// ChangeRequirement sets the number of confirmations required. The upper
// bound depends on the owner set at execution time and is checked then.
type ChangeRequirement struct {
	Required int `json:"required" validate:"min=1"`
}

func (TransferFunds) Type() Type     { return TypeTransferFunds }
func (UpgradeContract) Type() Type   { return TypeUpgradeContract }
func (ChangeParameter) Type() Type   { return TypeChangeParameter }
func (Other) Type() Type             { return TypeOther }
func (AddOwner) Type() Type          { return TypeAddOwner }
func (RemoveOwner) Type() Type       { return TypeRemoveOwner }
func (ChangeRequirement) Type() Type { return TypeChangeRequirement }

func (TransferFunds) isPayload()     {}
func (UpgradeContract) isPayload()   {}
func (ChangeParameter) isPayload()   {}
func (Other) isPayload()             {}
func (AddOwner) isPayload()          {}
func (RemoveOwner) isPayload()       {}
func (ChangeRequirement) isPayload() {}

// validatePayload checks the static constraints of p.
func validatePayload(p Payload) error {
	if p == nil {
		return fmt.Errorf("%w: payload is required", ErrInvalidPayload)
	}

	if err := validator.Validate(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return nil
}

// EncodePayload serializes p without its type tag. The tag is stored
// alongside it as the transaction type.
func EncodePayload(p Payload) (json.RawMessage, error) {
	if p == nil {
		return nil, ErrInvalidPayload
	}

	return json.Marshal(p)
}

// DecodePayload rebuilds the payload variant selected by t from raw.
func DecodePayload(t Type, raw json.RawMessage) (Payload, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	var (
		p   Payload
		err error
	)
	switch t {
	case TypeTransferFunds:
		p, err = decodeAs[TransferFunds](raw)
	case TypeUpgradeContract:
		p, err = decodeAs[UpgradeContract](raw)
	case TypeChangeParameter:
		p, err = decodeAs[ChangeParameter](raw)
	case TypeOther:
		p, err = decodeAs[Other](raw)
	case TypeAddOwner:
		p, err = decodeAs[AddOwner](raw)
	case TypeRemoveOwner:
		p, err = decodeAs[RemoveOwner](raw)
	case TypeChangeRequirement:
		p, err = decodeAs[ChangeRequirement](raw)
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", ErrInvalidPayload, t)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return p, nil
}

func decodeAs[T Payload](raw json.RawMessage) (Payload, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
