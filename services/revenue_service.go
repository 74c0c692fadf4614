package services

import (
	"context"
	"time"

	"salesapi/constants"
	"salesapi/dto"
	"salesapi/errors"
	"salesapi/services/logger"

	"gorm.io/gorm"
)

const (
	queryDateLayout = "2006-01-02"

	lineRevenueExpr = "order_items.quantity_sold * order_items.unit_price * (1 - order_items.discount)"
	grossSalesExpr  = "order_items.quantity_sold * order_items.unit_price"

	joinOrders   = "JOIN orders ON orders.order_id = order_items.order_id"
	joinProducts = "JOIN products ON products.product_id = order_items.product_id"
)

type RevenueService struct {
	db     *gorm.DB
	logger logger.Logger
}

type RevenueServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewRevenueService(opts RevenueServiceOptions) *RevenueService {
	return &RevenueService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// parseRange chuyển tham số start_date/end_date thành time.Time (bao gồm cả hai đầu)
func (s *RevenueService) parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(queryDateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate,
			"start_date không hợp lệ, định dạng: yyyy-mm-dd", err)
	}
	endDate, err := time.Parse(queryDateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate,
			"end_date không hợp lệ, định dạng: yyyy-mm-dd", err)
	}
	return startDate, endDate, nil
}

// itemsInRange query gốc: order_items join orders giới hạn theo ngày bán
func (s *RevenueService) itemsInRange(ctx context.Context, start, end time.Time) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("order_items").
		Joins(joinOrders).
		Where("orders.date_of_sale BETWEEN ? AND ?", start, end)
}

// GetTotalRevenue tính tổng doanh thu trong khoảng ngày
func (s *RevenueService) GetTotalRevenue(ctx context.Context, start, end string) (float64, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return 0, err
	}

	var total float64
	err = s.itemsInRange(ctx, startDate, endDate).
		Select("COALESCE(SUM(" + lineRevenueExpr + "), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetRevenueByCategory doanh thu theo danh mục sản phẩm, giảm dần
func (s *RevenueService) GetRevenueByCategory(ctx context.Context, start, end string) ([]dto.CategoryRevenue, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	results := []dto.CategoryRevenue{}
	err = s.itemsInRange(ctx, startDate, endDate).
		Select("products.category, SUM(" + lineRevenueExpr + ") AS revenue").
		Joins(joinProducts).
		Group("products.category").
		Order("revenue DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetRevenueByProduct doanh thu theo sản phẩm, giảm dần
func (s *RevenueService) GetRevenueByProduct(ctx context.Context, start, end string) ([]dto.ProductRevenue, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	results := []dto.ProductRevenue{}
	err = s.itemsInRange(ctx, startDate, endDate).
		Select("products.name AS product_name, SUM(" + lineRevenueExpr + ") AS revenue").
		Joins(joinProducts).
		Group("products.name").
		Order("revenue DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetRevenueByRegion doanh thu theo khu vực, giảm dần
func (s *RevenueService) GetRevenueByRegion(ctx context.Context, start, end string) ([]dto.RegionRevenue, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	results := []dto.RegionRevenue{}
	err = s.itemsInRange(ctx, startDate, endDate).
		Select("orders.region, SUM(" + lineRevenueExpr + ") AS revenue").
		Group("orders.region").
		Order("revenue DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetTopProductsOverall top N sản phẩm theo số lượng bán
func (s *RevenueService) GetTopProductsOverall(ctx context.Context, start, end string, limit int) ([]dto.TopProduct, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = constants.DefaultTopProductsLimit
	}

	results := []dto.TopProduct{}
	err = s.itemsInRange(ctx, startDate, endDate).
		Select("products.name AS product_name, SUM(order_items.quantity_sold) AS quantity_sold").
		Joins(joinProducts).
		Group("products.name").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetTopProductsByCategory top N sản phẩm theo số lượng bán, gộp theo danh mục
func (s *RevenueService) GetTopProductsByCategory(ctx context.Context, start, end string, limit int) ([]dto.TopProductByCategory, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = constants.DefaultTopProductsLimit
	}

	results := []dto.TopProductByCategory{}
	err = s.itemsInRange(ctx, startDate, endDate).
		Select("products.category, products.name AS product_name, SUM(order_items.quantity_sold) AS quantity_sold").
		Joins(joinProducts).
		Group("products.category, products.name").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetTopProductsByRegion top N sản phẩm theo số lượng bán, gộp theo khu vực
func (s *RevenueService) GetTopProductsByRegion(ctx context.Context, start, end string, limit int) ([]dto.TopProductByRegion, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = constants.DefaultTopProductsLimit
	}

	results := []dto.TopProductByRegion{}
	err = s.itemsInRange(ctx, startDate, endDate).
		Select("orders.region, products.name AS product_name, SUM(order_items.quantity_sold) AS quantity_sold").
		Joins(joinProducts).
		Group("orders.region, products.name").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetTotalCustomers đếm số khách hàng có đơn trong khoảng ngày
func (s *RevenueService) GetTotalCustomers(ctx context.Context, start, end string) (int64, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return 0, err
	}

	var total int64
	err = s.db.WithContext(ctx).
		Table("orders").
		Where("orders.date_of_sale BETWEEN ? AND ?", startDate, endDate).
		Select("COUNT(DISTINCT customer_id)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetTotalOrders đếm số đơn hàng trong khoảng ngày
func (s *RevenueService) GetTotalOrders(ctx context.Context, start, end string) (int64, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return 0, err
	}

	var total int64
	err = s.db.WithContext(ctx).
		Table("orders").
		Where("orders.date_of_sale BETWEEN ? AND ?", startDate, endDate).
		Select("COUNT(*)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetAverageOrderValue giá trị trung bình của một đơn hàng
func (s *RevenueService) GetAverageOrderValue(ctx context.Context, start, end string) (float64, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return 0, err
	}

	orderTotals := s.itemsInRange(ctx, startDate, endDate).
		Select("SUM(" + lineRevenueExpr + ") AS total_value").
		Group("orders.order_id")

	var avg float64
	err = s.db.WithContext(ctx).
		Table("(?) AS order_totals", orderTotals).
		Select("COALESCE(AVG(total_value), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg, nil
}

// GetProfitMarginByProduct biên lợi nhuận theo sản phẩm, giảm dần
// profit_margin = (doanh thu sau giảm giá - doanh thu gốc) / doanh thu gốc
func (s *RevenueService) GetProfitMarginByProduct(ctx context.Context, start, end string) ([]dto.ProductProfitMargin, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	results := []dto.ProductProfitMargin{}
	err = s.itemsInRange(ctx, startDate, endDate).
		Select("products.name AS product_name, "+
			"SUM("+lineRevenueExpr+") AS revenue, "+
			"SUM("+grossSalesExpr+") AS total_sales, "+
			"(SUM("+lineRevenueExpr+") - SUM("+grossSalesExpr+")) / SUM("+grossSalesExpr+") AS profit_margin").
		Joins(joinProducts).
		Group("products.name").
		Order("profit_margin DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetCustomerLifetimeValue tổng doanh thu theo từng khách hàng (CLV), giảm dần
func (s *RevenueService) GetCustomerLifetimeValue(ctx context.Context, start, end string) ([]dto.CustomerValue, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	results := []dto.CustomerValue{}
	err = s.itemsInRange(ctx, startDate, endDate).
		Select("orders.customer_id, SUM(" + lineRevenueExpr + ") AS clv").
		Group("orders.customer_id").
		Order("clv DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetCustomerSegmentation phân loại khách hàng theo tổng chi tiêu:
// > 1000 là High, 500 đến 1000 là Medium, còn lại là Low
func (s *RevenueService) GetCustomerSegmentation(ctx context.Context, start, end string) ([]dto.CustomerSegment, error) {
	startDate, endDate, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	results := []dto.CustomerSegment{}
	err = s.itemsInRange(ctx, startDate, endDate).
		Select("orders.customer_id, "+
			"SUM("+lineRevenueExpr+") AS total_spent, "+
			"CASE "+
			"WHEN SUM("+lineRevenueExpr+") > ? THEN ? "+
			"WHEN SUM("+lineRevenueExpr+") BETWEEN ? AND ? THEN ? "+
			"ELSE ? END AS customer_segment",
			constants.SegmentHighThreshold, constants.SegmentHigh,
			constants.SegmentMediumThreshold, constants.SegmentHighThreshold, constants.SegmentMedium,
			constants.SegmentLow).
		Group("orders.customer_id").
		Order("total_spent DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
