package validator

import (
	"testing"
	"time"

	"salesapi/dto"

	"github.com/stretchr/testify/require"
)

func validRecord() *dto.SalesRecord {
	return &dto.SalesRecord{
		OrderID:      "O1",
		CustomerID:   "C1",
		ProductID:    "P1",
		ProductName:  "Widget",
		Category:     "Tools",
		UnitPrice:    10,
		QuantitySold: 2,
		Discount:     0.1,
		DateOfSale:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Region:       "West",
	}
}

func TestValidateSalesRecord(t *testing.T) {
	require.NoError(t, ValidateSalesRecord(validRecord()))

	tests := []struct {
		name   string
		mutate func(record *dto.SalesRecord)
	}{
		{"thiếu order_id", func(r *dto.SalesRecord) { r.OrderID = "" }},
		{"thiếu customer_id", func(r *dto.SalesRecord) { r.CustomerID = "" }},
		{"thiếu product_id", func(r *dto.SalesRecord) { r.ProductID = "" }},
		{"quantity bằng 0", func(r *dto.SalesRecord) { r.QuantitySold = 0 }},
		{"quantity âm", func(r *dto.SalesRecord) { r.QuantitySold = -1 }},
		{"unit_price âm", func(r *dto.SalesRecord) { r.UnitPrice = -5 }},
		{"discount âm", func(r *dto.SalesRecord) { r.Discount = -0.1 }},
		{"discount lớn hơn 1", func(r *dto.SalesRecord) { r.Discount = 1.5 }},
		{"thiếu date_of_sale", func(r *dto.SalesRecord) { r.DateOfSale = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)
			require.Error(t, ValidateSalesRecord(record))
		})
	}
}

func TestValidateSalesRecord_DiscountBounds(t *testing.T) {
	// 0 và 1 là giá trị hợp lệ (bao gồm hai đầu)
	record := validRecord()
	record.Discount = 0
	require.NoError(t, ValidateSalesRecord(record))

	record.Discount = 1
	require.NoError(t, ValidateSalesRecord(record))
}
