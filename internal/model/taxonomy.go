package model

// Suggested taxonomies. These are the fixed option sets presented to the
// AI-assist boundary and the entry forms; the data layer stores whatever
// free text it is given and never validates against them.

// SuggestedCategories is the ten-item category set the AI parser maps
// free-text input onto. The last entry is the catch-all.
var SuggestedCategories = []string{
	"Transport",
	"Food",
	"Rent",
	"Utilities",
	"Entertainment",
	"Work",
	"Communication",
	"Medical",
	"Daily",
	"Other",
}

// SuggestedChannels is the five-item payment channel set. The last entry
// is the catch-all.
var SuggestedChannels = []string{
	"WeChat",
	"Alipay",
	"Bank Card",
	"Cash",
	"Other",
}

// SuggestedAssetCategories mirrors the asset form's picker options.
var SuggestedAssetCategories = []string{
	"Bank Deposit",
	"Cash",
	"Housing Fund",
	"Wealth Product",
	"Foreign Currency",
	"Other",
}

// IsSuggestedCategory reports whether name is one of the fixed transaction
// categories. Matching is exact; no normalization.
func IsSuggestedCategory(name string) bool {
	return contains(SuggestedCategories, name)
}

// IsSuggestedChannel reports whether name is one of the fixed payment
// channels. Matching is exact; no normalization.
func IsSuggestedChannel(name string) bool {
	return contains(SuggestedChannels, name)
}

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}
