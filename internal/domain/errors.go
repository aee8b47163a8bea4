package domain

import "errors"

var (
	// ErrInvalidPeriod is returned for a period token outside the closed set
	ErrInvalidPeriod = errors.New("invalid period")
	// ErrInvalidAsset is returned for a negative value or non-chronological history
	ErrInvalidAsset = errors.New("invalid asset")
	// ErrInvalidSortKey is returned for a sort key outside the closed set
	ErrInvalidSortKey = errors.New("invalid sort key")
	// ErrInvalidCategoryFilter is returned for a filter naming an unknown category
	ErrInvalidCategoryFilter = errors.New("invalid category filter")
	// ErrAssetNotFound is returned by repositories when no asset matches
	ErrAssetNotFound = errors.New("asset not found")
	// ErrAssetExists is returned by repositories when an asset ID is already tracked
	ErrAssetExists = errors.New("asset already exists")
	// ErrNoHistory is returned by history repositories when an asset has no recorded point
	ErrNoHistory = errors.New("no history recorded")
)
