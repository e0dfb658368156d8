// Package analytics folds a set of orders into the revenue, popularity,
// payment and trend summaries shown on the admin dashboard. It is pure
// in-memory computation; the handler fetches the orders and hands them in.
package analytics

import (
	"sort"
	"time"

	"salt-n-sugar-backend/models"
)

// ProductStat accumulates per-product sales across all order line items.
type ProductStat struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	Orders   int     `json:"orders"`
}

// PaymentStat accumulates per-payment-method order counts and revenue.
type PaymentStat struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// StatusCounts buckets orders over the five lifecycle states.
type StatusCounts struct {
	Pending   int `json:"pending"`
	Preparing int `json:"preparing"`
	Delivery  int `json:"delivery"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// DailyRevenue is one point of the 7-day trend.
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// Summary is the full dashboard payload for a time range.
type Summary struct {
	TotalOrders        int                    `json:"totalOrders"`
	TotalRevenue       float64                `json:"totalRevenue"`
	AverageOrderValue  float64                `json:"averageOrderValue"`
	PopularProducts    []ProductStat          `json:"popularProducts"`
	PaymentMethodStats map[string]PaymentStat `json:"paymentMethodStats"`
	OrdersByStatus     StatusCounts           `json:"ordersByStatus"`
	DailyRevenue       []DailyRevenue         `json:"dailyRevenue"`
	Range              string                 `json:"range"`
}

const topProducts = 10

// Compute aggregates orders into a Summary. The trailing 7-day trend ends
// on the calendar day containing now, in now's location. An order with no
// items still counts toward revenue and status totals; a zero totalAmount
// is valid.
func Compute(orders []models.Order, now time.Time, rng string) Summary {
	s := Summary{
		TotalOrders:        len(orders),
		PaymentMethodStats: make(map[string]PaymentStat),
		Range:              rng,
	}

	for _, o := range orders {
		s.TotalRevenue += o.TotalAmount
	}
	if len(orders) > 0 {
		s.AverageOrderValue = s.TotalRevenue / float64(len(orders))
	}

	s.PopularProducts = popularProducts(orders)

	for _, o := range orders {
		method := string(o.PaymentMethod)
		if method == "" {
			method = string(models.PaymentCashOnDelivery)
		}
		stat := s.PaymentMethodStats[method]
		stat.Count++
		stat.Revenue += o.TotalAmount
		s.PaymentMethodStats[method] = stat
	}

	for _, o := range orders {
		switch o.Status {
		case models.StatusPending:
			s.OrdersByStatus.Pending++
		case models.StatusPreparing:
			s.OrdersByStatus.Preparing++
		case models.StatusOutForDelivery:
			s.OrdersByStatus.Delivery++
		case models.StatusCompleted:
			s.OrdersByStatus.Completed++
		case models.StatusCancelled:
			s.OrdersByStatus.Cancelled++
		}
	}

	s.DailyRevenue = dailyRevenue(orders, now)
	return s
}

func popularProducts(orders []models.Order) []ProductStat {
	stats := make(map[string]*ProductStat)
	for _, o := range orders {
		for _, item := range o.Items {
			stat, ok := stats[item.ProductName]
			if !ok {
				stat = &ProductStat{Name: item.ProductName}
				stats[item.ProductName] = stat
			}
			stat.Quantity += item.Quantity
			stat.Revenue += item.Price * float64(item.Quantity)
			stat.Orders++
		}
	}

	popular := make([]ProductStat, 0, len(stats))
	for _, stat := range stats {
		popular = append(popular, *stat)
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Quantity != popular[j].Quantity {
			return popular[i].Quantity > popular[j].Quantity
		}
		return popular[i].Name < popular[j].Name
	})
	if len(popular) > topProducts {
		popular = popular[:topProducts]
	}
	return popular
}

// dailyRevenue sums order totals over the trailing 7 calendar days,
// oldest first, bucketing by the order's creation time.
func dailyRevenue(orders []models.Order, now time.Time) []DailyRevenue {
	trend := make([]DailyRevenue, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 0, 1)

		var revenue float64
		for _, o := range orders {
			if !o.CreatedAt.Before(start) && o.CreatedAt.Before(end) {
				revenue += o.TotalAmount
			}
		}
		trend = append(trend, DailyRevenue{Date: start.Format("Jan 2"), Revenue: revenue})
	}
	return trend
}
