// Package pricing implements location-based price localization. Every base
// price in the catalog is a metro (Cairo/Giza) reference; the five-tier
// coefficient table scales it to the user's cost-of-living region.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category is one of the five pricing tiers
type Category string

const (
	CategoryMetro      Category = "metro"
	CategoryMajorCity  Category = "major_city"
	CategoryRegional   Category = "regional"
	CategoryProvincial Category = "provincial"
	CategoryRural      Category = "rural"
)

// multipliers is the fixed five-tier coefficient table
var multipliers = map[Category]float64{
	CategoryMetro:      1.00,
	CategoryMajorCity:  0.95,
	CategoryRegional:   0.88,
	CategoryProvincial: 0.80,
	CategoryRural:      0.70,
}

// cityCategories maps lowercased city names (English and Arabic) to their
// pricing tier. Maintained alongside the catalog feed.
var cityCategories = map[string]Category{
	// Metro (1.00)
	"cairo": CategoryMetro, "el qahira": CategoryMetro, "القاهرة": CategoryMetro,
	"giza": CategoryMetro, "el giza": CategoryMetro, "الجيزة": CategoryMetro,
	"new cairo": CategoryMetro, "القاهرة الجديدة": CategoryMetro,
	"6th of october": CategoryMetro, "october": CategoryMetro, "السادس من أكتوبر": CategoryMetro, "أكتوبر": CategoryMetro,
	"nasr city": CategoryMetro, "مدينة نصر": CategoryMetro,
	"heliopolis": CategoryMetro, "masr el gedida": CategoryMetro, "مصر الجديدة": CategoryMetro,
	"maadi": CategoryMetro, "el maadi": CategoryMetro, "المعادي": CategoryMetro,
	"shoubra": CategoryMetro, "shubra": CategoryMetro, "شبرا": CategoryMetro,
	"helwan": CategoryMetro, "حلوان": CategoryMetro,

	// Major City (0.95)
	"alexandria": CategoryMajorCity, "alex": CategoryMajorCity, "الإسكندرية": CategoryMajorCity,
	"port said": CategoryMajorCity, "bur said": CategoryMajorCity, "بورسعيد": CategoryMajorCity,
	"suez": CategoryMajorCity, "el suez": CategoryMajorCity, "السويس": CategoryMajorCity,
	"ismailia": CategoryMajorCity, "el ismailia": CategoryMajorCity, "الإسماعيلية": CategoryMajorCity,
	"mansoura": CategoryMajorCity, "el mansoura": CategoryMajorCity, "المنصورة": CategoryMajorCity,

	// Regional (0.88)
	"tanta": CategoryRegional, "el tanta": CategoryRegional, "طنطا": CategoryRegional,
	"zagazig": CategoryRegional, "el zagazig": CategoryRegional, "الزقازيق": CategoryRegional,
	"damanhour": CategoryRegional, "damanhur": CategoryRegional, "دمنهور": CategoryRegional,
	"kafr el sheikh": CategoryRegional, "kafr el-sheikh": CategoryRegional, "كفر الشيخ": CategoryRegional,
	"shibin el kom": CategoryRegional, "shebin el kom": CategoryRegional, "شبين الكوم": CategoryRegional,
	"damietta": CategoryRegional, "domyat": CategoryRegional, "دمياط": CategoryRegional,
	"benha": CategoryRegional, "banha": CategoryRegional, "بنها": CategoryRegional,

	// Provincial (0.80)
	"aswan": CategoryProvincial, "أسوان": CategoryProvincial,
	"luxor": CategoryProvincial, "el luxor": CategoryProvincial, "الأقصر": CategoryProvincial,
	"sohag": CategoryProvincial, "suhag": CategoryProvincial, "سوهاج": CategoryProvincial,
	"qena": CategoryProvincial, "قنا": CategoryProvincial,
	"minya": CategoryProvincial, "el minya": CategoryProvincial, "المنيا": CategoryProvincial,
	"beni suef": CategoryProvincial, "bani sweif": CategoryProvincial, "بني سويف": CategoryProvincial,
	"fayoum": CategoryProvincial, "el fayoum": CategoryProvincial, "الفيوم": CategoryProvincial,
	"asyut": CategoryProvincial, "assiut": CategoryProvincial, "أسيوط": CategoryProvincial,
	"marsa matrouh": CategoryProvincial, "matrouh": CategoryProvincial, "مرسى مطروح": CategoryProvincial, "مطروح": CategoryProvincial,
	"el arish": CategoryProvincial, "arish": CategoryProvincial, "العريش": CategoryProvincial,
	"hurghada": CategoryProvincial, "el gouna": CategoryProvincial, "الغردقة": CategoryProvincial,
	"sharm el sheikh": CategoryProvincial, "sharm": CategoryProvincial, "شرم الشيخ": CategoryProvincial,
}

// Multiplier returns the coefficient for a pricing category. Unknown
// categories map to metro: never underestimate cost for the user.
func Multiplier(category Category) float64 {
	if m, ok := multipliers[category]; ok {
		return m
	}
	return multipliers[CategoryMetro]
}

// Localize scales a metro reference price to the given location category
func Localize(basePrice decimal.Decimal, category Category) decimal.Decimal {
	return basePrice.Mul(decimal.NewFromFloat(Multiplier(category)))
}

// CategoryForCity resolves a city name to its pricing tier. Unknown or empty
// cities default to metro.
func CategoryForCity(city string) Category {
	if city == "" {
		return CategoryMetro
	}
	if c, ok := cityCategories[strings.ToLower(strings.TrimSpace(city))]; ok {
		return c
	}
	return CategoryMetro
}
