package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents how an invoice discount value is interpreted
type DiscountType int

const (
	DiscountTypeFlat       DiscountType = 0
	DiscountTypePercentage DiscountType = 1
)

func (t DiscountType) String() string {
	return [...]string{"Flat", "Percentage"}[t]
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DiscountType(i)
		return nil
	}
	switch str {
	case "Flat":
		*t = DiscountTypeFlat
	case "Percentage":
		*t = DiscountTypePercentage
	}
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypeFlat
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DiscountType(v)
	case int:
		*t = DiscountType(v)
	}
	return nil
}
