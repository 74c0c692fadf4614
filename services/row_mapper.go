package services

import (
	"fmt"
	"strconv"
	"time"

	"salesapi/dto"
	"salesapi/errors"
)

const csvDateLayout = "2006-01-02"

// MapSalesRecord chuyển một dòng CSV (map cột -> giá trị) thành SalesRecord.
// Trường số hoặc ngày không parse được làm cả dòng bị loại.
func MapSalesRecord(row map[string]string) (*dto.SalesRecord, error) {
	unitPrice, err := strconv.ParseFloat(row["unit_price"], 64)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRowInvalid,
			fmt.Sprintf("unit_price không hợp lệ: %q", row["unit_price"]), err)
	}

	quantity, err := strconv.Atoi(row["quantity_sold"])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRowInvalid,
			fmt.Sprintf("quantity_sold không hợp lệ: %q", row["quantity_sold"]), err)
	}

	discount, err := strconv.ParseFloat(row["discount"], 64)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRowInvalid,
			fmt.Sprintf("discount không hợp lệ: %q", row["discount"]), err)
	}

	dateOfSale, err := time.Parse(csvDateLayout, row["date_of_sale"])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRowInvalid,
			fmt.Sprintf("date_of_sale không hợp lệ: %q", row["date_of_sale"]), err)
	}

	return &dto.SalesRecord{
		OrderID:         row["order_id"],
		CustomerID:      row["customer_id"],
		CustomerName:    row["customer_name"],
		CustomerEmail:   row["customer_email"],
		CustomerAddress: row["customer_address"],
		ProductID:       row["product_id"],
		ProductName:     row["name"],
		Category:        row["category"],
		UnitPrice:       unitPrice,
		QuantitySold:    quantity,
		Discount:        discount,
		DateOfSale:      dateOfSale,
		Region:          row["region"],
	}, nil
}
