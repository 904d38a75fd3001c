package parcel

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// ItemType classifies the parcel contents.
type ItemType string

const (
	ItemFood        ItemType = "Food"
	ItemFrozen      ItemType = "Frozen"
	ItemElectronics ItemType = "Electronics"
	ItemClothing    ItemType = "Clothing"
	ItemDocuments   ItemType = "Documents"
	ItemOther       ItemType = "Other"
)

// ItemTypeFromString validates and converts a wire value to an ItemType.
func ItemTypeFromString(s string) (ItemType, error) {
	switch it := ItemType(s); it {
	case ItemFood, ItemFrozen, ItemElectronics, ItemClothing, ItemDocuments, ItemOther:
		return it, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"itemType", fmt.Errorf("%q is not a valid item type", s))
	}
}

func (it ItemType) Validate() error {
	_, err := ItemTypeFromString(string(it))
	return err
}

func (it ItemType) String() string {
	return string(it)
}
