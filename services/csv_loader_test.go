package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"salesapi/constants"
	"salesapi/errors"
	"salesapi/models"
	"salesapi/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const csvHeader = "order_id,customer_id,customer_name,customer_email,customer_address,product_id,name,category,unit_price,quantity_sold,discount,date_of_sale,region"

func newTestLoader(t *testing.T) (*CSVLoaderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	loader := NewCSVLoaderService(CSVLoaderServiceOptions{
		DB:      db,
		Logger:  logger.NewDefaultLogger(logger.ErrorLevel),
		Workers: 1,
	})
	return loader, db
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func lastRefreshLog(t *testing.T, db *gorm.DB) models.RefreshLog {
	t.Helper()
	var entry models.RefreshLog
	require.NoError(t, db.Order("id DESC").First(&entry).Error)
	return entry
}

func TestLoad_RoundTrip(t *testing.T) {
	loader, db := newTestLoader(t)
	ctx := context.Background()

	path := writeCSV(t, csvHeader,
		"O1,C1,An,an@example.com,Hanoi,P1,Widget,Tools,10,2,0.1,2024-01-01,West")
	require.NoError(t, loader.Load(ctx, path))

	// Đủ bốn bản ghi cho một dòng CSV
	var customer models.Customer
	require.NoError(t, db.First(&customer, "customer_id = ?", "C1").Error)
	assert.Equal(t, "An", customer.Name)
	assert.Equal(t, "an@example.com", customer.Email)

	var product models.Product
	require.NoError(t, db.First(&product, "product_id = ?", "P1").Error)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, "Tools", product.Category)
	assert.InDelta(t, 10, product.UnitPrice, 1e-9)

	var order models.Order
	require.NoError(t, db.First(&order, "order_id = ?", "O1").Error)
	assert.Equal(t, "C1", order.CustomerID)
	assert.Equal(t, "West", order.Region)

	var item models.OrderItem
	require.NoError(t, db.First(&item, "order_id = ?", "O1").Error)
	assert.Equal(t, 2, item.QuantitySold)
	assert.InDelta(t, 0.1, item.Discount, 1e-9)

	// Tổng doanh thu đúng ngày đó: 2 x 10 x 0.9 = 18
	service := NewRevenueService(RevenueServiceOptions{DB: db, Logger: logger.NewDefaultLogger(logger.ErrorLevel)})
	total, err := service.GetTotalRevenue(ctx, "2024-01-01", "2024-01-01")
	require.NoError(t, err)
	require.InDelta(t, 18, total, 1e-9)

	// Kết quả cuối cùng là success với message cố định
	refresh := lastRefreshLog(t, db)
	assert.Equal(t, constants.RefreshStatusSuccess, refresh.Status)
	assert.Equal(t, RefreshSuccessMessage, refresh.Message)
}

func TestLoad_BadRowsDroppedStreamStillSucceeds(t *testing.T) {
	loader, db := newTestLoader(t)

	path := writeCSV(t, csvHeader,
		"O1,C1,An,an@example.com,Hanoi,P1,Widget,Tools,10,abc,0.1,2024-01-01,West", // quantity không parse được
		"O2,C1,An,an@example.com,Hanoi,P1,Widget,Tools,10,2,1.5,2024-01-01,West",   // discount ngoài [0,1]
		"O3,C1,An,an@example.com,Hanoi,P1,Widget,Tools,10,2,0,2024-01-01,West")
	require.NoError(t, loader.Load(context.Background(), path))

	// Chỉ dòng hợp lệ được ghi, dòng lỗi bị bỏ qua
	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, "O3", order.OrderID)

	// Lỗi từng dòng không ảnh hưởng kết quả cuối cùng
	refresh := lastRefreshLog(t, db)
	assert.Equal(t, constants.RefreshStatusSuccess, refresh.Status)
}

func TestLoad_MissingFileRecordsError(t *testing.T) {
	loader, db := newTestLoader(t)

	err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeCSVOpen, appErr.Code)

	refresh := lastRefreshLog(t, db)
	assert.Equal(t, constants.RefreshStatusError, refresh.Status)
	assert.NotEmpty(t, refresh.Message)
}

func TestLoad_MalformedCSVRecordsError(t *testing.T) {
	loader, db := newTestLoader(t)

	// Dòng thứ hai sai số cột so với header
	path := writeCSV(t, csvHeader,
		"O1,C1,An,an@example.com,Hanoi,P1,Widget,Tools,10,2,0,2024-01-01,West",
		"O2,C1")
	err := loader.Load(context.Background(), path)
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeCSVParse, appErr.Code)

	refresh := lastRefreshLog(t, db)
	assert.Equal(t, constants.RefreshStatusError, refresh.Status)
	assert.NotEmpty(t, refresh.Message)
}

func TestLoad_SecondIngestUpsertsCustomerAndProduct(t *testing.T) {
	loader, db := newTestLoader(t)
	ctx := context.Background()

	first := writeCSV(t, csvHeader,
		"O1,C1,An,an@example.com,Hanoi,P1,Widget,Tools,10,2,0,2024-01-01,West")
	require.NoError(t, loader.Load(ctx, first))

	// Cùng khách hàng và sản phẩm nhưng thuộc tính mới, order id mới
	second := writeCSV(t, csvHeader,
		"O2,C1,An Nguyen,an.nguyen@example.com,Hanoi,P1,Widget Pro,Tools,12,1,0,2024-01-02,East")
	require.NoError(t, loader.Load(ctx, second))

	// Customer/Product được update chứ không nhân đôi
	var customerCount, productCount, orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&customerCount).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(1), customerCount)
	assert.Equal(t, int64(1), productCount)
	assert.Equal(t, int64(2), orderCount)
	assert.Equal(t, int64(2), itemCount)

	var customer models.Customer
	require.NoError(t, db.First(&customer, "customer_id = ?", "C1").Error)
	assert.Equal(t, "An Nguyen", customer.Name)

	var product models.Product
	require.NoError(t, db.First(&product, "product_id = ?", "P1").Error)
	assert.Equal(t, "Widget Pro", product.Name)
	assert.InDelta(t, 12, product.UnitPrice, 1e-9)
}

func TestLoad_DuplicateOrderIDDropsRow(t *testing.T) {
	loader, db := newTestLoader(t)

	path := writeCSV(t, csvHeader,
		"O1,C1,An,an@example.com,Hanoi,P1,Widget,Tools,10,2,0,2024-01-01,West",
		"O1,C1,An,an@example.com,Hanoi,P1,Widget,Tools,10,3,0,2024-01-01,West")
	require.NoError(t, loader.Load(context.Background(), path))

	// Trùng order id: dòng sau fail cả transaction của nó, dòng đầu giữ nguyên
	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(1), orderCount)
	assert.Equal(t, int64(1), itemCount)

	refresh := lastRefreshLog(t, db)
	assert.Equal(t, constants.RefreshStatusSuccess, refresh.Status)
}

func TestMapSalesRecord_MalformedField(t *testing.T) {
	row := map[string]string{
		"order_id": "O1", "customer_id": "C1", "product_id": "P1",
		"name": "Widget", "category": "Tools",
		"unit_price": "10", "quantity_sold": "2", "discount": "0.1",
		"date_of_sale": "01-01-2024", "region": "West",
	}
	_, err := MapSalesRecord(row)
	require.Error(t, err)

	row["date_of_sale"] = "2024-01-01"
	record, err := MapSalesRecord(row)
	require.NoError(t, err)
	assert.Equal(t, "Widget", record.ProductName)
	assert.Equal(t, 2, record.QuantitySold)
	assert.InDelta(t, 0.1, record.Discount, 1e-9)
}
