package handler

import (
	"time"

	"github.com/erp/erp-system/internal/application/project"
	"github.com/erp/erp-system/internal/domain/settlement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectRequest represents the request body for creating or replacing a project
type ProjectRequest struct {
	Name        string     `json:"name" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Status      string     `json:"status" binding:"omitempty,oneof=PLANNING IN_PROGRESS PAUSED COMPLETED CANCELLED"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

func (r ProjectRequest) toApp() project.ProjectRequest {
	return project.ProjectRequest{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// ProjectListQuery holds the query parameters of a project listing
type ProjectListQuery struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=PLANNING IN_PROGRESS PAUSED COMPLETED CANCELLED"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	ContractCount int64      `json:"contractCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ProjectContractResponse is a contract listed on a project
type ProjectContractResponse struct {
	ID             uuid.UUID       `json:"id"`
	ContractNumber string          `json:"contractNumber"`
	Title          string          `json:"title"`
	ContractType   string          `json:"contractType"`
	Status         string          `json:"status"`
	Amount         decimal.Decimal `json:"amount"`
	StartDate      *time.Time      `json:"startDate"`
	EndDate        *time.Time      `json:"endDate"`
	ClientID       uuid.UUID       `json:"clientId"`
	ClientName     string          `json:"clientName"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// MarginResponse is the sales-minus-purchase result of a project
type MarginResponse struct {
	SalesCount     int             `json:"salesCount"`
	PurchaseCount  int             `json:"purchaseCount"`
	SalesAmount    decimal.Decimal `json:"salesAmount"`
	PurchaseAmount decimal.Decimal `json:"purchaseAmount"`
	GrossProfit    decimal.Decimal `json:"grossProfit"`
	ProfitRate     decimal.Decimal `json:"profitRate"`
}

// ProjectDetailResponse is a project with its contracts and margin
type ProjectDetailResponse struct {
	ProjectResponse
	Contracts []ProjectContractResponse `json:"contracts"`
	Margin    *MarginResponse           `json:"margin"`
}

func toProjectResponse(p project.ProjectResponse) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Status:        p.Status,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		ContractCount: p.ContractCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toMarginResponse(m *settlement.Margin) *MarginResponse {
	if m == nil {
		return nil
	}
	return &MarginResponse{
		SalesCount:     m.SalesCount,
		PurchaseCount:  m.PurchaseCount,
		SalesAmount:    m.SalesAmount,
		PurchaseAmount: m.PurchaseAmount,
		GrossProfit:    m.GrossProfit,
		ProfitRate:     m.ProfitRate,
	}
}

func toProjectDetailResponse(d project.ProjectDetail) ProjectDetailResponse {
	resp := ProjectDetailResponse{
		ProjectResponse: toProjectResponse(d.ProjectResponse),
		Margin:          toMarginResponse(d.Margin),
	}
	if d.Contracts != nil {
		resp.Contracts = make([]ProjectContractResponse, len(d.Contracts))
		for i, c := range d.Contracts {
			resp.Contracts[i] = ProjectContractResponse{
				ID:             c.ID,
				ContractNumber: c.ContractNumber,
				Title:          c.Title,
				ContractType:   c.ContractType,
				Status:         c.Status,
				Amount:         c.Amount,
				StartDate:      c.StartDate,
				EndDate:        c.EndDate,
				ClientID:       c.ClientID,
				ClientName:     c.ClientName,
				CreatedAt:      c.CreatedAt,
			}
		}
	}
	return resp
}
