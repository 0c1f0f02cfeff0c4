package models

import "encoding/xml"

// Code is a short uppercase identifier.
type Code string

// Car is a vehicle for sale.
type Car struct {
	XMLName xml.Name `xml:"car"`
	VIN     string   `xml:"vin,attr" facets:"length=17"`
	Model   string   `xml:"model" default:"TT"`
	Wheels  [4]Wheel
	Options []string `facets:"maxLength=16;whiteSpace=collapse"`
	Dealer  *Code    `xml:"dealer"`
	Notes   string   `xml:"-"`
	price   float64
}

type Wheel struct {
	Size float64 `xml:"size,attr" facets:"minInclusive=10;maxInclusive=24"`
}

// Deprecated: use Car.
type Truck struct {
	Load int `xml:"load"`
}
