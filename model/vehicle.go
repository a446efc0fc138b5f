package model

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/gg-motors/constant"
	cerr "github.com/muhammadheryan/gg-motors/utils/errors"
	validatorx "github.com/muhammadheryan/gg-motors/utils/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle represents a document of the vehicles collection
type Vehicle struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title" validate:"required"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price" validate:"gte=0"`
	Year         *int               `bson:"year,omitempty" json:"year,omitempty" validate:"omitempty,vehicle_year"`
	Mileage      int                `bson:"mileage" json:"mileage" validate:"gte=0"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	FuelType     string             `bson:"fuelType,omitempty" json:"fuelType,omitempty" validate:"omitempty,oneof=gasoline diesel electric hybrid other"`
	Transmission string             `bson:"transmission,omitempty" json:"transmission,omitempty" validate:"omitempty,oneof=manual automatic other"`
	Color        string             `bson:"color,omitempty" json:"color,omitempty"`
	Condition    string             `bson:"condition" json:"condition" validate:"required,oneof=new used excellent good fair poor"`
	Images       []string           `bson:"images" json:"images"`
	SellerID     primitive.ObjectID `bson:"sellerId" json:"sellerId" validate:"required"`
	Category     string             `bson:"category" json:"category" validate:"required,oneof=cars motorcycles trucks other"`
	Brand        string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Model        string             `bson:"model,omitempty" json:"model,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Normalize trims free-text attributes and fills the schema defaults.
func (v *Vehicle) Normalize() {
	v.Title = strings.TrimSpace(v.Title)
	v.Description = strings.TrimSpace(v.Description)
	v.Location = strings.TrimSpace(v.Location)
	v.Color = strings.TrimSpace(v.Color)
	v.Brand = strings.TrimSpace(v.Brand)
	v.Model = strings.TrimSpace(v.Model)
	v.FuelType = strings.TrimSpace(v.FuelType)
	v.Transmission = strings.TrimSpace(v.Transmission)
	v.Condition = strings.TrimSpace(v.Condition)
	v.Category = strings.TrimSpace(v.Category)
	if v.Condition == "" {
		v.Condition = constant.VehicleConditionDefault
	}
	if v.Category == "" {
		v.Category = constant.VehicleCategoryDefault
	}
	if v.Images == nil {
		v.Images = []string{}
	}
}

// Validate checks field presence, ranges and enums.
func (v *Vehicle) Validate() []cerr.FieldError {
	return validatorx.Validate(v)
}

// Touch stamps a write. updatedAt never moves backwards and strictly
// advances on every call, even within the same millisecond.
func (v *Vehicle) Touch(now time.Time) {
	now = now.UTC().Truncate(time.Millisecond)
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	if !now.After(v.UpdatedAt) {
		now = v.UpdatedAt.Add(time.Millisecond)
	}
	v.UpdatedAt = now
}

// VehicleDetail is a vehicle with its seller joined in place of sellerId.
type VehicleDetail struct {
	Vehicle `bson:",inline"`
	Seller  *UserSummary `bson:"seller,omitempty" json:"sellerId"`
}

// VehicleSummary is the subset of a vehicle joined into transactions.
type VehicleSummary struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Title string             `bson:"title" json:"title"`
	Price float64            `bson:"price" json:"price"`
}

// VehicleFilter for listing vehicles. Zero values are not applied.
type VehicleFilter struct {
	Category string
	Brand    string
	Location string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	Limit    int
}

// VehicleForm carries the multipart text fields of a create request.
type VehicleForm struct {
	Title        string
	Description  string
	Price        string
	Year         string
	Mileage      string
	Location     string
	FuelType     string
	Transmission string
	Color        string
	Condition    string
	Category     string
	Brand        string
	Model        string
}

// SetField assigns a multipart field by its wire name; unknown names are
// ignored, including sellerId which is always taken from the caller.
func (f *VehicleForm) SetField(name, value string) {
	switch name {
	case "title":
		f.Title = value
	case "description":
		f.Description = value
	case "price":
		f.Price = value
	case "year":
		f.Year = value
	case "mileage":
		f.Mileage = value
	case "location":
		f.Location = value
	case "fuelType":
		f.FuelType = value
	case "transmission":
		f.Transmission = value
	case "color":
		f.Color = value
	case "condition":
		f.Condition = value
	case "category":
		f.Category = value
	case "brand":
		f.Brand = value
	case "model":
		f.Model = value
	}
}

// MissingFields lists the required create fields that are absent or blank.
func (f *VehicleForm) MissingFields() []cerr.FieldError {
	var missing []cerr.FieldError
	for _, field := range []struct {
		name  string
		value string
	}{
		{"title", f.Title},
		{"brand", f.Brand},
		{"model", f.Model},
		{"price", f.Price},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, cerr.FieldError{Field: field.name, Message: field.name + " is required"})
		}
	}
	return missing
}

// ToVehicle converts the form into an entity. Numeric fields that do not
// parse are reported as field errors.
func (f *VehicleForm) ToVehicle() (*Vehicle, []cerr.FieldError) {
	var errs []cerr.FieldError
	v := &Vehicle{
		Title:        f.Title,
		Description:  f.Description,
		Location:     f.Location,
		FuelType:     f.FuelType,
		Transmission: f.Transmission,
		Color:        f.Color,
		Condition:    f.Condition,
		Category:     f.Category,
		Brand:        f.Brand,
		Model:        f.Model,
	}

	if s := strings.TrimSpace(f.Price); s != "" {
		price, err := strconv.ParseFloat(s, 64)
		switch {
		case err != nil:
			errs = append(errs, cerr.FieldError{Field: "price", Message: "price must be a number"})
		case math.IsInf(price, 0) || math.IsNaN(price):
			errs = append(errs, cerr.FieldError{Field: "price", Message: "price must be a finite number"})
		default:
			v.Price = price
		}
	}
	if s := strings.TrimSpace(f.Year); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, cerr.FieldError{Field: "year", Message: "year must be an integer"})
		} else {
			v.Year = &year
		}
	}
	if s := strings.TrimSpace(f.Mileage); s != "" {
		mileage, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, cerr.FieldError{Field: "mileage", Message: "mileage must be an integer"})
		}
		v.Mileage = mileage
	}

	return v, errs
}

// UpdateVehicleRequest is a partial update; nil fields are left untouched.
type UpdateVehicleRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	Year         *int      `json:"year"`
	Mileage      *int      `json:"mileage"`
	Location     *string   `json:"location"`
	FuelType     *string   `json:"fuelType"`
	Transmission *string   `json:"transmission"`
	Color        *string   `json:"color"`
	Condition    *string   `json:"condition"`
	Category     *string   `json:"category"`
	Brand        *string   `json:"brand"`
	Model        *string   `json:"model"`
	Images       *[]string `json:"images"`
}

// Apply copies the present fields onto v.
func (r *UpdateVehicleRequest) Apply(v *Vehicle) {
	setString(&v.Title, r.Title)
	setString(&v.Description, r.Description)
	setString(&v.Location, r.Location)
	setString(&v.FuelType, r.FuelType)
	setString(&v.Transmission, r.Transmission)
	setString(&v.Color, r.Color)
	setString(&v.Condition, r.Condition)
	setString(&v.Category, r.Category)
	setString(&v.Brand, r.Brand)
	setString(&v.Model, r.Model)
	if r.Price != nil {
		v.Price = *r.Price
	}
	if r.Year != nil {
		year := *r.Year
		v.Year = &year
	}
	if r.Mileage != nil {
		v.Mileage = *r.Mileage
	}
	if r.Images != nil {
		v.Images = append([]string{}, (*r.Images)...)
	}
}

// ImageErrors reports an images list that is not a reordering or subset of
// current. Sellers can only keep or drop the images they uploaded.
func (r *UpdateVehicleRequest) ImageErrors(current []string) []cerr.FieldError {
	if r.Images == nil {
		return nil
	}

	owned := make(map[string]bool, len(current))
	for _, url := range current {
		owned[url] = true
	}
	seen := make(map[string]bool, len(*r.Images))
	for _, url := range *r.Images {
		if !owned[url] || seen[url] {
			return []cerr.FieldError{{Field: "images", Message: "images may only reorder or remove the vehicle's existing images"}}
		}
		seen[url] = true
	}
	return nil
}

// RemovedImages lists the entries of before that after no longer holds.
func RemovedImages(before, after []string) []string {
	kept := make(map[string]bool, len(after))
	for _, url := range after {
		kept[url] = true
	}
	var removed []string
	for _, url := range before {
		if !kept[url] {
			removed = append(removed, url)
		}
	}
	return removed
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ImageUpload is an image accepted from a multipart request.
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type DeleteVehicleResponse struct {
	Message string `json:"message"`
}
