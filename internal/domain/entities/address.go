package entities

import (
	"fmt"

	"eventsite/pkg/maps"
)

type Address struct {
	ID      uint
	Name    string
	Street  string
	City    string
	Zip     string
	Country string
}

// Line formats the address as "street, city zip, country".
func (a *Address) Line() string {
	return fmt.Sprintf("%s, %s %s, %s", a.Street, a.City, a.Zip, a.Country)
}

func (a *Address) GoogleMapImg(zoom, width, height int, apiKey string) string {
	return maps.StaticImageURL(a.Line(), zoom, width, height, apiKey)
}

func (a *Address) GoogleMapLink(zoom int) string {
	return maps.LinkURL(a.Line(), zoom)
}
