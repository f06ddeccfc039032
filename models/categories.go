package models

// Item statuses. Status transitions happen only inside the match and
// rejection services; no other code path writes these columns.
const (
	ItemStatusActive   = "active"
	ItemStatusMatched  = "matched"
	ItemStatusReturned = "returned"
)

// Match statuses.
const (
	MatchStatusPending  = "pending"
	MatchStatusSuccess  = "success"
	MatchStatusRejected = "rejected"
)

// Rejection feedback reasons.
const (
	RejectReasonWrongItem       = "wrong_item"
	RejectReasonWrongBrand      = "wrong_brand"
	RejectReasonWrongLocation   = "wrong_location"
	RejectReasonAlreadyReturned = "already_returned"
	RejectReasonOther           = "other"
)

// ItemCategories is the closed list of report categories.
var ItemCategories = []string{
	"Phone",
	"Laptop",
	"Tablet",
	"Headphones",
	"Charger",
	"Wallet",
	"Keys",
	"Bag",
	"Bottle",
	"Book",
	"Clothing",
	"Watch",
	"Jewelry",
	"ID Card",
	"Umbrella",
	"Other",
}

func IsValidCategory(category string) bool {
	for _, c := range ItemCategories {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidRejectReason(reason string) bool {
	switch reason {
	case RejectReasonWrongItem, RejectReasonWrongBrand, RejectReasonWrongLocation,
		RejectReasonAlreadyReturned, RejectReasonOther:
		return true
	}
	return false
}
