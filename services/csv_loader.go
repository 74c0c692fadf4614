package services

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"salesapi/constants"
	"salesapi/dto"
	"salesapi/errors"
	"salesapi/models"
	"salesapi/services/logger"
	"salesapi/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const RefreshSuccessMessage = "CSV load completed"

type CSVLoaderService struct {
	db      *gorm.DB
	logger  logger.Logger
	workers int
}

type CSVLoaderServiceOptions struct {
	DB      *gorm.DB
	Logger  logger.Logger
	Workers int
}

func NewCSVLoaderService(opts CSVLoaderServiceOptions) *CSVLoaderService {
	workers := opts.Workers
	if workers <= 0 {
		workers = constants.DefaultLoaderWorkers
	}
	return &CSVLoaderService{
		db:      opts.DB,
		logger:  opts.Logger,
		workers: workers,
	}
}

// Load đọc file CSV tại path và ghi từng dòng vào database.
// Dòng lỗi chỉ được log rồi bỏ qua, không dừng cả stream. Mỗi lần gọi
// ghi đúng một dòng kết quả (success/error) vào bảng refresh_logs.
func (s *CSVLoaderService) Load(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		appErr := errors.NewAppError(errors.ErrCodeCSVOpen, "không mở được file CSV", err)
		s.logRefresh(ctx, constants.RefreshStatusError, appErr.Error())
		s.logger.Error("CSV load failed: %v", appErr)
		return appErr
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		appErr := errors.NewAppError(errors.ErrCodeCSVHeader, "không đọc được header CSV", err)
		s.logRefresh(ctx, constants.RefreshStatusError, appErr.Error())
		s.logger.Error("CSV load failed: %v", appErr)
		return appErr
	}

	rows := make(chan map[string]string, s.workers)
	var processed, dropped int64

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				if err := s.applyRow(ctx, row); err != nil {
					atomic.AddInt64(&dropped, 1)
					s.logger.Error("Row processing error: %v", err)
					continue
				}
				atomic.AddInt64(&processed, 1)
			}
		}()
	}

	var streamErr error
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			streamErr = err
			break
		}

		row := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		rows <- row
	}
	close(rows)
	wg.Wait()

	if streamErr != nil {
		appErr := errors.NewAppError(errors.ErrCodeCSVParse, "dữ liệu CSV không hợp lệ", streamErr)
		s.logRefresh(ctx, constants.RefreshStatusError, appErr.Error())
		s.logger.Error("CSV load failed: %v", appErr)
		return appErr
	}

	s.logRefresh(ctx, constants.RefreshStatusSuccess, RefreshSuccessMessage)
	s.logger.Info("CSV load complete: %d rows written, %d rows dropped", processed, dropped)
	return nil
}

// applyRow map một dòng CSV thành bốn lệnh ghi, gói trong một transaction:
// upsert customer, upsert product, insert order, insert order item.
func (s *CSVLoaderService) applyRow(ctx context.Context, row map[string]string) error {
	record, err := MapSalesRecord(row)
	if err != nil {
		return err
	}

	if err := validator.ValidateSalesRecord(record); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer := models.Customer{
			CustomerID: record.CustomerID,
			Name:       record.CustomerName,
			Email:      record.CustomerEmail,
			Address:    record.CustomerAddress,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			UpdateAll: true,
		}).Create(&customer).Error; err != nil {
			return err
		}

		product := models.Product{
			ProductID: record.ProductID,
			Name:      record.ProductName,
			Category:  record.Category,
			UnitPrice: record.UnitPrice,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			UpdateAll: true,
		}).Create(&product).Error; err != nil {
			return err
		}

		order := models.Order{
			OrderID:    record.OrderID,
			CustomerID: record.CustomerID,
			DateOfSale: record.DateOfSale,
			Region:     record.Region,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		item := models.OrderItem{
			OrderID:      record.OrderID,
			ProductID:    record.ProductID,
			QuantitySold: record.QuantitySold,
			UnitPrice:    record.UnitPrice,
			Discount:     record.Discount,
		}
		return tx.Create(&item).Error
	})
}

// logRefresh ghi kết quả cuối cùng của một lần nạp dữ liệu
func (s *CSVLoaderService) logRefresh(ctx context.Context, status, message string) {
	entry := models.RefreshLog{
		Status:  status,
		Message: message,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		s.logger.Error("Không ghi được refresh log: %v", err)
	}
}

// LastRefresh lấy kết quả lần nạp dữ liệu gần nhất
func (s *CSVLoaderService) LastRefresh(ctx context.Context) (*dto.RefreshStatusResponse, error) {
	var entry models.RefreshLog
	if err := s.db.WithContext(ctx).Order("id DESC").First(&entry).Error; err != nil {
		return nil, err
	}
	return &dto.RefreshStatusResponse{
		Status:    entry.Status,
		Message:   entry.Message,
		CreatedAt: entry.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
