package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Stat errors
	ErrMsgInvalidStatUsed = "invalid stat used"
	ErrMsgDuplicateStat   = "duplicate stat"

	// Item type errors
	ErrMsgDuplicateItemType = "duplicate item type"
	ErrMsgInvalidItemType   = "invalid item type"

	// Quantity errors
	ErrMsgMaxQuantityExceeded = "max quantity exceeded"
	ErrMsgNoItemsToConsume    = "no items to consume"
	ErrMsgNotConsumable       = "item is not consumable"
	ErrMsgInvalidQuantity     = "invalid quantity"

	// Equip errors
	ErrMsgNotEquippable   = "item is not equippable"
	ErrMsgAlreadyEquipped = "item is already equipped"
	ErrMsgNotEquipped     = "item is not equipped"
)

// Inventory errors.
// Wrap these errors with fmt.Errorf("%w: %q", domain.ErrXxx, name) for additional context.
var (
	ErrInvalidStatUsed = errors.New(ErrMsgInvalidStatUsed)
	ErrDuplicateStat   = errors.New(ErrMsgDuplicateStat)

	ErrDuplicateItemType = errors.New(ErrMsgDuplicateItemType)
	ErrInvalidItemType   = errors.New(ErrMsgInvalidItemType)

	ErrMaxQuantityExceeded = errors.New(ErrMsgMaxQuantityExceeded)
	ErrNoItemsToConsume    = errors.New(ErrMsgNoItemsToConsume)
	ErrNotConsumable       = errors.New(ErrMsgNotConsumable)
	ErrInvalidQuantity     = errors.New(ErrMsgInvalidQuantity)

	ErrNotEquippable   = errors.New(ErrMsgNotEquippable)
	ErrAlreadyEquipped = errors.New(ErrMsgAlreadyEquipped)
	ErrNotEquipped     = errors.New(ErrMsgNotEquipped)
)

// ErrorCode is the flat result taxonomy reported to hosts that want a code
// instead of an error value.
type ErrorCode int

const (
	CodeSuccess ErrorCode = iota
	CodeInvalidStatUsed
	CodeDuplicateItemType
	CodeInvalidItemType
	CodeMaxQuantityExceeded
	CodeNoItemsToConsume
	CodeNotEquippable
	CodeAlreadyEquipped
	CodeNotEquipped
	CodeNotConsumable
	CodeDuplicateStat
	CodeInvalidQuantity
	// CodeUnknown is returned for errors that did not originate from the inventory.
	CodeUnknown
)

var codeNames = map[ErrorCode]string{
	CodeSuccess:             "Success",
	CodeInvalidStatUsed:     "InvalidStatUsed",
	CodeDuplicateItemType:   "DuplicateItemType",
	CodeInvalidItemType:     "InvalidItemType",
	CodeMaxQuantityExceeded: "MaxQuantityExceeded",
	CodeNoItemsToConsume:    "NoItemsToConsume",
	CodeNotEquippable:       "NotEquippable",
	CodeAlreadyEquipped:     "AlreadyEquipped",
	CodeNotEquipped:         "NotEquipped",
	CodeNotConsumable:       "NotConsumable",
	CodeDuplicateStat:       "DuplicateStat",
	CodeInvalidQuantity:     "InvalidQuantity",
	CodeUnknown:             "Unknown",
}

// String returns the display name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return codeNames[CodeUnknown]
}

var codeBySentinel = []struct {
	err  error
	code ErrorCode
}{
	{ErrInvalidStatUsed, CodeInvalidStatUsed},
	{ErrDuplicateItemType, CodeDuplicateItemType},
	{ErrInvalidItemType, CodeInvalidItemType},
	{ErrMaxQuantityExceeded, CodeMaxQuantityExceeded},
	{ErrNoItemsToConsume, CodeNoItemsToConsume},
	{ErrNotEquippable, CodeNotEquippable},
	{ErrAlreadyEquipped, CodeAlreadyEquipped},
	{ErrNotEquipped, CodeNotEquipped},
	{ErrNotConsumable, CodeNotConsumable},
	{ErrDuplicateStat, CodeDuplicateStat},
	{ErrInvalidQuantity, CodeInvalidQuantity},
}

// CodeOf maps an error returned by the inventory (wrapped or not) to its code.
// A nil error is CodeSuccess.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return CodeSuccess
	}
	for _, entry := range codeBySentinel {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}
	return CodeUnknown
}
