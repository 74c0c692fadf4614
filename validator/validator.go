package validator

import (
	"salesapi/dto"
	"salesapi/errors"
)

// ValidateSalesRecord validate một dòng dữ liệu bán hàng trước khi ghi vào database
func ValidateSalesRecord(record *dto.SalesRecord) error {
	if record.OrderID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "order_id không được để trống", nil)
	}

	if record.CustomerID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "customer_id không được để trống", nil)
	}

	if record.ProductID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "product_id không được để trống", nil)
	}

	if record.QuantitySold <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "quantity_sold phải lớn hơn 0", nil)
	}

	if record.UnitPrice < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "unit_price không được âm", nil)
	}

	if record.Discount < 0 || record.Discount > 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "discount phải nằm trong khoảng [0,1]", nil)
	}

	if record.DateOfSale.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "date_of_sale không được để trống", nil)
	}

	return nil
}
