package validation

// OrderItemRequest is a single submitted line: product reference + quantity.
type OrderItemRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"` // must be >= 1
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	OrderItems       []OrderItemRequest `json:"orderItems" validate:"required,min=1,dive"` // at least one line
	ShippingAddress1 string             `json:"shippingAddress1" validate:"required"`
	ShippingAddress2 string             `json:"shippingAddress2,omitempty"`
	City             string             `json:"city,omitempty"`
	Zip              string             `json:"zip,omitempty"`
	Country          string             `json:"country,omitempty"`
	Phone            string             `json:"phone,omitempty"`
	Status           string             `json:"status,omitempty"`
	User             string             `json:"user" validate:"required"`
}

// UpdateOrderStatusRequest is the payload for PUT /orders/:id.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateCategoryRequest is the payload for POST /categories.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// CreateProductRequest is the multipart form for POST /products.
type CreateProductRequest struct {
	Name            string  `form:"name" validate:"required"`
	Description     string  `form:"description" validate:"required"`
	RichDescription string  `form:"richDescription"`
	Brand           string  `form:"brand"`
	Price           float64 `form:"price" validate:"required,gt=0"`
	Category        string  `form:"category" validate:"required"`
	CountInStock    int     `form:"countInStock" validate:"min=0"`
	Rating          float64 `form:"rating"`
	NumReviews      int     `form:"numReviews"`
	IsFeatured      bool    `form:"isFeatured"`
}

// UpdateProductRequest is the payload for PUT /products/:id.
type UpdateProductRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	RichDescription string  `json:"richDescription,omitempty"`
	Brand           string  `json:"brand,omitempty"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	Category        string  `json:"category" validate:"required"`
	CountInStock    int     `json:"countInStock" validate:"min=0"`
	Rating          float64 `json:"rating,omitempty"`
	NumReviews      int     `json:"numReviews,omitempty"`
	IsFeatured      bool    `json:"isFeatured,omitempty"`
}

// RegisterUserRequest is the payload for POST /users/register.
type RegisterUserRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone,omitempty"`
	Street    string `json:"street,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
	IsAdmin   bool   `json:"isAdmin,omitempty"`
}

// LoginRequest is the payload for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
