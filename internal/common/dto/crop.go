package dto

import "time"

// CropRequest creates or fully replaces a crop. SowedDate uses YYYY-MM-DD.
type CropRequest struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Soil          string `json:"soil"`
	Place         string `json:"place"`
	Comments      string `json:"comments"`
	Image         string `json:"image"`
	SowedDate     string `json:"sowedDate"`
	HarvestPeriod *int   `json:"harvestPeriod"`
	Status        string `json:"status"`
}

// CropInfo is the response view of a crop
type CropInfo struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Soil          string    `json:"soil"`
	Place         string    `json:"place"`
	Comments      string    `json:"comments"`
	Image         string    `json:"image"`
	SowedDate     string    `json:"sowedDate"`
	HarvestPeriod int       `json:"harvestPeriod"`
	ApproxHarvest string    `json:"approxHarvest"`
	Status        string    `json:"status"`
	UserID        uint      `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
