package models

import "slices"

// Categories 는 폼에서 선택 가능한 카테고리 목록이다. 첫 항목이 기본값이다.
var Categories = []string{
	"Home Decor", "DIY & Crafts", "Food & Drink", "Women's Fashion",
	"Beauty", "Travel", "Health & Fitness", "Education",
	"Technology", "Art & Design", "Gardening", "Weddings",
	"Parenting", "Finance", "Motivational Quotes", "Inspirational Quotes",
}

// Styles 는 폼에서 선택 가능한 비주얼 스타일 목록이다. 첫 항목이 기본값이다.
var Styles = []string{
	"Modern & Clean", "Minimalist", "Boho Chic", "Rustic / Farmhouse",
	"Colorful & Bold", "Elegant & Luxury", "Infographic / Educational",
	"Typography Focused", "Vintage / Retro", "Dark Mode / High Contrast",
}

func DefaultCategory() string { return Categories[0] }
func DefaultStyle() string    { return Styles[0] }

func IsValidCategory(c string) bool { return slices.Contains(Categories, c) }
func IsValidStyle(s string) bool    { return slices.Contains(Styles, s) }
