package api

import "time"

type Product struct {
	ID           string    `json:"id"`
	SellerID     string    `json:"seller_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Category     string    `json:"category,omitempty"`
	ImageURLs    []string  `json:"image_urls"`
	ReturnPolicy string    `json:"returnPolicy,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Category     string   `json:"category,omitempty"`
	ImageURLs    []string `json:"image_urls"`
	Quantity     int      `json:"quantity,omitempty"`
	ReturnPolicy string   `json:"returnPolicy,omitempty"`
}

type UpdateProductRequest struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Category    string   `json:"category,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

// OrderItem is the wire shape of one checkout line: the cart's denormalized
// display fields are stripped, only id, quantity and captured price travel.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CreateOrderRequest struct {
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	DeliveryAddress string      `json:"delivery_address"`
	City            string      `json:"city"`
	Region          string      `json:"region"`
	PaymentMethod   string      `json:"paymentMethod"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
}

type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id,omitempty"`
	CustomerName  string      `json:"customer_name,omitempty"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

type PaymentRequest struct {
	OrderID     string `json:"order_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

type Payment struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id,omitempty"`
	OrderID       string    `json:"order_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id"`
	PaymentLink   string    `json:"payment_link,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

type DashboardMetrics struct {
	TotalUsers    int64   `json:"total_users"`
	TotalVendors  int64   `json:"total_vendors"`
	TotalProducts int64   `json:"total_products"`
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type SalesTrend struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

type BuyerConversion struct {
	Month            string  `json:"month"`
	RegisteredBuyers int     `json:"registered_buyers"`
	BuyersWithOrders int     `json:"buyers_with_orders"`
	ConversionRate   float64 `json:"conversion_rate"`
}

type CategoryStat struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Value      int     `json:"value"`
}

type Activity struct {
	ActivityType string `json:"activity_type"`
	Name         string `json:"name"`
	Time         string `json:"time"`
	Action       string `json:"action"`
}
