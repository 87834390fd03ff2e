package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// StockDirection represents the direction of a stock movement
type StockDirection int

const (
	StockDirectionIn  StockDirection = 0
	StockDirectionOut StockDirection = 1
)

func (d StockDirection) String() string {
	return [...]string{"IN", "OUT"}[d]
}

func (d StockDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *StockDirection) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*d = StockDirection(i)
		return nil
	}
	switch str {
	case "IN":
		*d = StockDirectionIn
	case "OUT":
		*d = StockDirectionOut
	}
	return nil
}

func (d StockDirection) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *StockDirection) Scan(value interface{}) error {
	if value == nil {
		*d = StockDirectionIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*d = StockDirection(v)
	case int:
		*d = StockDirection(v)
	}
	return nil
}
