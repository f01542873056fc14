package models

import (
	"time"
)

type Order struct {
	ID            string        `json:"id"             validate:"required"`
	BusinessID    string        `json:"businessId"     validate:"required"`
	Status        OrderStatus   `json:"status"         validate:"required"`
	Origin        string        `json:"origin"`
	IsTest        bool          `json:"isTest"`
	PaymentType   PaymentMethod `json:"paymentType"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Total         float64       `json:"total"          validate:"gte=0"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"createdAt"      validate:"required"`
	UpdatedAt     time.Time     `json:"updatedAt"`

	Customer        Customer    `json:"user"`
	PickupAddress   *Address    `json:"pickupAddress,omitempty"`
	DeliveryAddress *Address    `json:"deliveryAddress,omitempty"`
	Items           []OrderItem `json:"items" validate:"dive"`
}

type Customer struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type Address struct {
	ID         string   `json:"id"`
	Street     string   `json:"street"`
	Number     string   `json:"number,omitempty"`
	Apartment  string   `json:"apartment,omitempty"`
	City       string   `json:"city"`
	Province   string   `json:"province"`
	Country    string   `json:"country"`
	PostalCode string   `json:"postalCode,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

type OrderItem struct {
	ID              string             `json:"id"`
	ProductName     string             `json:"productName"`
	Quantity        int                `json:"quantity"        validate:"gte=0"`
	PriceAtPurchase float64            `json:"priceAtPurchase" validate:"gte=0"`
	Notes           string             `json:"notes,omitempty"`
	OptionGroups    []OrderOptionGroup `json:"optionGroups,omitempty"`
}

type OrderOptionGroup struct {
	ID          string        `json:"id"`
	GroupName   string        `json:"groupName"`
	MinQuantity int           `json:"minQuantity"`
	MaxQuantity int           `json:"maxQuantity"`
	Options     []OrderOption `json:"options,omitempty"`
}

type OrderOption struct {
	ID         string  `json:"id"`
	OptionName string  `json:"optionName"`
	PriceFinal float64 `json:"priceFinal" validate:"gte=0"`
	Quantity   int     `json:"quantity"`
}
