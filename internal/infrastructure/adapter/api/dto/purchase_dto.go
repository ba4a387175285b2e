package dto

// PurchaseRequest represents the API request for purchasing an asset.
// Price is the price the client saw; the purchase is rejected if it no longer
// matches the list price.
type PurchaseRequest struct {
	Price int64 `json:"price" binding:"min=0"`
}

// PurchaseResponse represents the API response for a completed purchase
type PurchaseResponse struct {
	AssetID    string `json:"assetId"`
	Price      int64  `json:"price"`
	NewBalance int64  `json:"newBalance"`
	Success    bool   `json:"success"`
}
