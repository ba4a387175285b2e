package dto

// AssetResponse represents a single catalog asset in API responses
type AssetResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Price          int64   `json:"price"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	CityID         string  `json:"cityId,omitempty"`
	Type           string  `json:"type"`
	Color          string  `json:"color,omitempty"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	Owned          bool    `json:"owned"`
	OwnerUserID    string  `json:"ownerUserId,omitempty"`
	OwnerAvatarURL string  `json:"ownerAvatarUrl,omitempty"`
	OwnedByMe      bool    `json:"ownedByMe"`
}

// OwnedAssetResponse represents one entry of the caller's portfolio
type OwnedAssetResponse struct {
	AssetID       string `json:"assetId"`
	PurchasePrice int64  `json:"purchasePrice"`
	PurchaseDate  string `json:"purchaseDate"`
}

// PortfolioResponse summarizes the caller's holdings within the catalog payload
type PortfolioResponse struct {
	OwnedAssets     []OwnedAssetResponse `json:"ownedAssets"`
	PortfolioSize   int                  `json:"portfolioSize"`
	TotalCoinsSpent int64                `json:"totalCoinsSpent"`
}

// CatalogResponse represents the full catalog payload for one user
type CatalogResponse struct {
	Assets    []AssetResponse   `json:"assets"`
	Portfolio PortfolioResponse `json:"portfolio"`
}

// NearbyResponse represents assets within a radius of a map position
type NearbyResponse struct {
	Assets []AssetResponse `json:"assets"`
}
