package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SalesOrderStatus represents the status of a sales order.
// Transitions are one-way: Draft -> Approved -> Delivered.
type SalesOrderStatus int

const (
	SalesOrderStatusDraft     SalesOrderStatus = 0
	SalesOrderStatusApproved  SalesOrderStatus = 1
	SalesOrderStatusDelivered SalesOrderStatus = 2
)

func (s SalesOrderStatus) String() string {
	return [...]string{"Draft", "Approved", "Delivered"}[s]
}

func (s SalesOrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SalesOrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SalesOrderStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = SalesOrderStatusDraft
	case "Approved":
		*s = SalesOrderStatusApproved
	case "Delivered":
		*s = SalesOrderStatusDelivered
	}
	return nil
}

func (s SalesOrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SalesOrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SalesOrderStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SalesOrderStatus(v)
	case int:
		*s = SalesOrderStatus(v)
	}
	return nil
}
