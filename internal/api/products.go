package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Product is a shop item.
type Product struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Price         float64        `json:"price"`
	DiscountPrice *float64       `json:"discountPrice,omitempty"`
	Categories    []string       `json:"categories,omitempty"`
	InventoryCount int           `json:"inventoryCount"`
	Images        []ProductImage `json:"images,omitempty"`
}

// ProductImage is one of a product's gallery entries.
type ProductImage struct {
	ID       int64  `json:"id"`
	URL      string `json:"imageUrl"`
	IsMain   bool   `json:"isMain"`
	Position int    `json:"position"`
}

// ProductFilters narrows and orders a product listing. Page is 1-based; the
// backend pages from zero and the client translates.
type ProductFilters struct {
	Page          int
	Size          int
	Category      string
	Search        string
	SortBy        string
	SortDirection string
}

// ProductPage is one page of a listing with 1-based page numbering.
type ProductPage struct {
	Products      []Product
	TotalElements int64
	TotalPages    int
	CurrentPage   int
	Last          bool
}

// springPage mirrors the backend's page envelope.
type springPage struct {
	Content       []Product `json:"content"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Number        int       `json:"number"`
	Last          bool      `json:"last"`
}

// ListProducts returns a page of products matching the filters.
func (c *Client) ListProducts(ctx context.Context, filters ProductFilters) (*ProductPage, error) {
	params := url.Values{}
	if filters.Page > 0 {
		params.Set("page", strconv.Itoa(filters.Page-1))
	}
	if filters.Size > 0 {
		params.Set("size", strconv.Itoa(filters.Size))
	}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	if filters.SortBy != "" {
		sort := filters.SortBy
		if filters.SortDirection != "" {
			sort += "," + filters.SortDirection
		}
		params.Set("sort", sort)
	}

	path := "/api/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page springPage
	if err := c.request(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &ProductPage{
		Products:      page.Content,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		CurrentPage:   page.Number + 1,
		Last:          page.Last,
	}, nil
}

// GetProduct fetches a single product.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
