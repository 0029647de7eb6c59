package pet

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	minNameLen = 2
	maxNameLen = 50
	maxAge     = 30
)

var minPrice = decimal.NewFromFloat(0.01)

// Form carries the raw string fields of the add-pet form exactly as typed.
type Form struct {
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Age   string `json:"age"`
	Price string `json:"price"`
}

// Normalized is a form after trimming and numeric coercion.
type Normalized struct {
	Name  string
	Breed string
	Age   int
	Price decimal.Decimal
}

// FieldErrors maps a field name to the message of the first rule it violated.
// Fields that pass validation are absent. It implements error so the add-pet
// pipeline can return it through a single error path.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid form fields: %s", strings.Join(fields, ", "))
}

// Validate checks every field independently and reports all failures in one
// pass, so the client can show every field error at once. On success it
// returns the normalized record and a nil map.
//
// Age 0 is valid: the form copy declares both "positive" and "minimum 0", and
// the explicit minimum wins. Negative ages get the positive-rule message.
func (f Form) Validate() (Normalized, FieldErrors) {
	errs := FieldErrors{}
	var norm Normalized

	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		errs["name"] = "Pet name is required"
	case utf8.RuneCountInString(name) < minNameLen:
		errs["name"] = "Name must be at least 2 characters"
	case utf8.RuneCountInString(name) > maxNameLen:
		errs["name"] = "Name must be less than 50 characters"
	default:
		norm.Name = name
	}

	breed := strings.TrimSpace(f.Breed)
	switch {
	case breed == "":
		errs["breed"] = "Breed is required"
	case utf8.RuneCountInString(breed) < minNameLen:
		errs["breed"] = "Breed must be at least 2 characters"
	case utf8.RuneCountInString(breed) > maxNameLen:
		errs["breed"] = "Breed must be less than 50 characters"
	default:
		norm.Breed = breed
	}

	rawAge := strings.TrimSpace(f.Age)
	if rawAge == "" {
		errs["age"] = "Age is required"
	} else if age, err := strconv.Atoi(rawAge); err != nil {
		errs["age"] = "Age must be a whole number"
	} else if age < 0 {
		errs["age"] = "Age must be positive"
	} else if age > maxAge {
		errs["age"] = "Age must be less than 30"
	} else {
		norm.Age = age
	}

	rawPrice := strings.TrimSpace(f.Price)
	if rawPrice == "" {
		errs["price"] = "Price is required"
	} else if price, err := decimal.NewFromString(rawPrice); err != nil {
		errs["price"] = "Price must be a number"
	} else if price.Sign() <= 0 {
		errs["price"] = "Price must be positive"
	} else if price.LessThan(minPrice) {
		errs["price"] = "Price must be greater than 0"
	} else {
		norm.Price = price
	}

	if len(errs) > 0 {
		return Normalized{}, errs
	}
	return norm, nil
}
