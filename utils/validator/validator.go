package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/gg-motors/constant"
	cerr "github.com/muhammadheryan/gg-motors/utils/errors"
)

var (
	v    *gpvalidator.Validate
	once sync.Once

	// now is swapped in tests that pin the current year.
	now = time.Now
)

// Init initializes the validator singleton (idempotent)
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
		v.RegisterTagNameFunc(jsonTagName)
		if err := v.RegisterValidation("vehicle_year", validVehicleYear); err != nil {
			panic(err)
		}
		if err := v.RegisterValidation("max_bytes", validMaxBytes); err != nil {
			panic(err)
		}
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}

// Validate runs ValidateStruct and flattens the outcome into one FieldError
// per offending attribute. A nil result means s is valid.
func Validate(s interface{}) []cerr.FieldError {
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}

	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []cerr.FieldError{{Message: err.Error()}}
	}

	out := make([]cerr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, cerr.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

// MaxVehicleYear is the newest model year accepted for a listing.
func MaxVehicleYear() int {
	return now().Year() + 1
}

func validVehicleYear(fl gpvalidator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= constant.VehicleMinYear && year <= int64(MaxVehicleYear())
}

// validMaxBytes bounds the encoded length of a string; max counts runes.
func validMaxBytes(fl gpvalidator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func message(fe gpvalidator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "max_bytes":
		return fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "vehicle_year":
		return fmt.Sprintf("%s must be between %d and %d", field, constant.VehicleMinYear, MaxVehicleYear())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
