package impl

import "ashcosmetic/internal/domain/entity"

// defaultProductPrice is the listed price of every seeded product, in rupees.
const defaultProductPrice = 999

// DefaultCatalog returns the products seeded at startup. Each call returns fresh values.
func DefaultCatalog() []*entity.Product {
	return []*entity.Product{
		{ID: "prod1", Price: defaultProductPrice, Name: "Clothes", Description: "Trendy and comfortable clothes for all seasons. High-quality fabric with premium stitching.", Image: "images/box1_image.jpg"},
		{ID: "prod2", Price: defaultProductPrice, Name: "Health Care", Description: "Top-quality healthcare products to keep you and your family safe and healthy.", Image: "images/box2_image.jpg"},
		{ID: "prod3", Price: defaultProductPrice, Name: "Furniture", Description: "Elegant and modern furniture that fits every home and style.", Image: "images/box3_image.jpg"},
		{ID: "prod4", Price: defaultProductPrice, Name: "Electronics", Description: "Latest gadgets and electronics with unbeatable deals and warranties.", Image: "images/box4_image.jpg"},
		{ID: "prod5", Price: defaultProductPrice, Name: "Beauty Picks", Description: "Exclusive beauty and skincare products to enhance your natural glow.", Image: "images/box5_image.jpg"},
		{ID: "prod6", Price: defaultProductPrice, Name: "Pet Care", Description: "Care and grooming essentials for your furry friends.", Image: "images/box6_image.jpg"},
		{ID: "prod7", Price: defaultProductPrice, Name: "New Arrivals Toys", Description: "Fun and safe toys that spark imagination and joy.", Image: "images/box7_image.jpg"},
		{ID: "prod8", Price: defaultProductPrice, Name: "Fashion Trends", Description: "Stay ahead in style with the latest fashion collections.", Image: "images/box8_image.jpg"},
		{ID: "prod9", Price: defaultProductPrice, Name: "Jewelry Trends", Description: "Shine bright with our elegant and timeless jewelry collection.", Image: "images/box9_image.jpg"},
	}
}
