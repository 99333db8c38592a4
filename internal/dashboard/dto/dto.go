package dto

import "github.com/mebelart/admin-service/internal/model"

type Stats struct {
	Counts       map[string]int `json:"counts"`
	NewRequests  int            `json:"newRequests"`
	RecentOrders []*model.Order `json:"recentOrders"`
}
