// File: internal/wishlist/model.go
package wishlist

import "fmt"

// Entry is one screen-ready wishlist row. FavoriteID is the deletion key and
// ProductID the navigation key; they are distinct identifiers upstream.
type Entry struct {
	FavoriteID string  `json:"favoriteId"`
	ProductID  string  `json:"productId"`
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image,omitempty"`
}

// Summary is the wishlist view model: all entries plus the aggregate total.
// TotalValue is recomputed from scratch on every load and mutation.
type Summary struct {
	Entries    []Entry `json:"entries"`
	ItemCount  int     `json:"itemCount"`
	TotalValue float64 `json:"totalValue"`
}

// ClearResult reports a clear-all outcome per item instead of one boolean.
type ClearResult struct {
	Requested  int      `json:"requested"`
	RemovedIDs []string `json:"removedIds"`
	FailedIDs  []string `json:"failedIds"`
}

// Outcome renders the "N of M removed" summary line.
func (r ClearResult) Outcome() string {
	return fmt.Sprintf("%d of %d removed", len(r.RemovedIDs), r.Requested)
}
