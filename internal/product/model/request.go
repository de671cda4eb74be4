package model

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"required,max=2000"`
	Category    string  `json:"category" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"required,min=0"`
	Unit        *string `json:"unit" validate:"omitempty,max=50"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url,max=500"`
	Featured    bool    `json:"featured"`
	InStock     *bool   `json:"in_stock"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Unit        *string  `json:"unit" validate:"omitempty,max=50"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url,max=500"`
	Featured    *bool    `json:"featured"`
	InStock     *bool    `json:"in_stock"`
}

type ListProductsRequest struct {
	Category string `form:"category" validate:"omitempty,max=100"`
	Featured *bool  `form:"featured"`
	Search   string `form:"search" validate:"omitempty,max=200"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	Limit    int    `form:"limit" validate:"omitempty,min=1,max=100"`
}
