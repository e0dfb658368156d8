package analytics

import (
	"testing"
	"time"

	"salt-n-sugar-backend/models"
)

func makeOrder(total float64, status models.OrderStatus, method models.PaymentMethod, created time.Time, items ...models.OrderItem) models.Order {
	return models.Order{
		TotalAmount:   total,
		Status:        status,
		PaymentMethod: method,
		OrderDate:     created,
		CreatedAt:     created,
		Items:         items,
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, time.Now(), "all")

	if s.TotalOrders != 0 {
		t.Errorf("TotalOrders = %d, want 0", s.TotalOrders)
	}
	if s.TotalRevenue != 0 {
		t.Errorf("TotalRevenue = %v, want 0", s.TotalRevenue)
	}
	if s.AverageOrderValue != 0 {
		t.Errorf("AverageOrderValue = %v, want 0 for empty input", s.AverageOrderValue)
	}
	if len(s.DailyRevenue) != 7 {
		t.Errorf("DailyRevenue has %d entries, want 7", len(s.DailyRevenue))
	}
	if len(s.PopularProducts) != 0 {
		t.Errorf("PopularProducts has %d entries, want 0", len(s.PopularProducts))
	}
}

func TestComputeRevenueAndAverage(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		makeOrder(1500, models.StatusPending, models.PaymentCashOnDelivery, now,
			models.OrderItem{ProductName: "Chocolate Cake", Size: "1 Pound", Quantity: 1, Price: 1500}),
		makeOrder(2500, models.StatusPending, models.PaymentCashOnDelivery, now,
			models.OrderItem{ProductName: "Red Velvet", Size: "2 Pound", Quantity: 1, Price: 2500}),
	}

	s := Compute(orders, now, "today")

	if s.TotalRevenue != 4000 {
		t.Errorf("TotalRevenue = %v, want 4000", s.TotalRevenue)
	}
	if s.AverageOrderValue != 2000 {
		t.Errorf("AverageOrderValue = %v, want 2000", s.AverageOrderValue)
	}
	if s.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", s.TotalOrders)
	}
	if s.Range != "today" {
		t.Errorf("Range = %q, want today", s.Range)
	}
}

func TestComputeStatusBucketsSumToTotal(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		makeOrder(100, models.StatusPending, models.PaymentCashOnDelivery, now),
		makeOrder(200, models.StatusPreparing, models.PaymentBankTransfer, now),
		makeOrder(300, models.StatusOutForDelivery, models.PaymentJazzCash, now),
		makeOrder(400, models.StatusCompleted, models.PaymentEasyPaisa, now),
		makeOrder(500, models.StatusCancelled, models.PaymentCashOnDelivery, now),
		makeOrder(600, models.StatusPending, models.PaymentCashOnDelivery, now),
	}

	s := Compute(orders, now, "all")

	sum := s.OrdersByStatus.Pending + s.OrdersByStatus.Preparing + s.OrdersByStatus.Delivery +
		s.OrdersByStatus.Completed + s.OrdersByStatus.Cancelled
	if sum != s.TotalOrders {
		t.Errorf("status buckets sum to %d, want TotalOrders %d", sum, s.TotalOrders)
	}
	if s.OrdersByStatus.Pending != 2 {
		t.Errorf("Pending = %d, want 2", s.OrdersByStatus.Pending)
	}
	if s.OrdersByStatus.Delivery != 1 {
		t.Errorf("Delivery = %d, want 1", s.OrdersByStatus.Delivery)
	}
}

func TestComputePopularProducts(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		makeOrder(5000, models.StatusCompleted, models.PaymentCashOnDelivery, now,
			models.OrderItem{ProductName: "Brownie", Size: "Box of 6", Quantity: 3, Price: 500},
			models.OrderItem{ProductName: "Chocolate Cake", Size: "1 Pound", Quantity: 1, Price: 1500}),
		makeOrder(1000, models.StatusPending, models.PaymentCashOnDelivery, now,
			models.OrderItem{ProductName: "Brownie", Size: "Box of 6", Quantity: 2, Price: 500}),
	}

	s := Compute(orders, now, "all")

	if len(s.PopularProducts) != 2 {
		t.Fatalf("PopularProducts has %d entries, want 2", len(s.PopularProducts))
	}
	top := s.PopularProducts[0]
	if top.Name != "Brownie" {
		t.Errorf("top product = %q, want Brownie", top.Name)
	}
	if top.Quantity != 5 {
		t.Errorf("Brownie quantity = %d, want 5", top.Quantity)
	}
	if top.Revenue != 2500 {
		t.Errorf("Brownie revenue = %v, want 2500", top.Revenue)
	}
	if top.Orders != 2 {
		t.Errorf("Brownie orders = %d, want 2", top.Orders)
	}
}

func TestComputePopularProductsTopTen(t *testing.T) {
	now := time.Now()
	var orders []models.Order
	for i := 0; i < 12; i++ {
		orders = append(orders, makeOrder(100, models.StatusPending, models.PaymentCashOnDelivery, now,
			models.OrderItem{ProductName: string(rune('A' + i)), Size: "S", Quantity: i + 1, Price: 100}))
	}

	s := Compute(orders, now, "all")

	if len(s.PopularProducts) != 10 {
		t.Errorf("PopularProducts has %d entries, want 10", len(s.PopularProducts))
	}
	if s.PopularProducts[0].Quantity != 12 {
		t.Errorf("top quantity = %d, want 12", s.PopularProducts[0].Quantity)
	}
}

func TestComputeZeroItemOrder(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		makeOrder(750, models.StatusPending, models.PaymentBankTransfer, now),
	}

	s := Compute(orders, now, "all")

	if len(s.PopularProducts) != 0 {
		t.Errorf("zero-item order contributed to popularity: %v", s.PopularProducts)
	}
	if s.TotalRevenue != 750 {
		t.Errorf("TotalRevenue = %v, want 750", s.TotalRevenue)
	}
	if s.OrdersByStatus.Pending != 1 {
		t.Errorf("Pending = %d, want 1", s.OrdersByStatus.Pending)
	}
}

func TestComputeZeroTotalOrder(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		makeOrder(0, models.StatusCompleted, models.PaymentCashOnDelivery, now),
		makeOrder(300, models.StatusCompleted, models.PaymentCashOnDelivery, now),
	}

	s := Compute(orders, now, "all")

	if s.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", s.TotalOrders)
	}
	if s.AverageOrderValue != 150 {
		t.Errorf("AverageOrderValue = %v, want 150", s.AverageOrderValue)
	}
}

func TestComputePaymentMethodStats(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		makeOrder(100, models.StatusPending, models.PaymentJazzCash, now),
		makeOrder(200, models.StatusPending, models.PaymentJazzCash, now),
		makeOrder(300, models.StatusPending, "", now), // falls back to COD bucket
	}

	s := Compute(orders, now, "all")

	jazz := s.PaymentMethodStats[string(models.PaymentJazzCash)]
	if jazz.Count != 2 || jazz.Revenue != 300 {
		t.Errorf("JazzCash stats = %+v, want count 2 revenue 300", jazz)
	}
	cod := s.PaymentMethodStats[string(models.PaymentCashOnDelivery)]
	if cod.Count != 1 || cod.Revenue != 300 {
		t.Errorf("COD stats = %+v, want count 1 revenue 300", cod)
	}
}

func TestDailyRevenueTrend(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.Local)
	orders := []models.Order{
		makeOrder(1000, models.StatusCompleted, models.PaymentCashOnDelivery, now),                   // today
		makeOrder(500, models.StatusCompleted, models.PaymentCashOnDelivery, now.AddDate(0, 0, -2)),  // two days ago
		makeOrder(250, models.StatusCompleted, models.PaymentCashOnDelivery, now.AddDate(0, 0, -6)),  // oldest day in window
		makeOrder(9999, models.StatusCompleted, models.PaymentCashOnDelivery, now.AddDate(0, 0, -7)), // outside the window
	}

	s := Compute(orders, now, "all")

	if len(s.DailyRevenue) != 7 {
		t.Fatalf("DailyRevenue has %d entries, want 7", len(s.DailyRevenue))
	}
	if s.DailyRevenue[0].Date != "Mar 4" {
		t.Errorf("first entry = %q, want Mar 4", s.DailyRevenue[0].Date)
	}
	if s.DailyRevenue[6].Date != "Mar 10" {
		t.Errorf("last entry = %q, want Mar 10", s.DailyRevenue[6].Date)
	}
	if s.DailyRevenue[6].Revenue != 1000 {
		t.Errorf("today's revenue = %v, want 1000", s.DailyRevenue[6].Revenue)
	}
	if s.DailyRevenue[4].Revenue != 500 {
		t.Errorf("two-days-ago revenue = %v, want 500", s.DailyRevenue[4].Revenue)
	}
	if s.DailyRevenue[0].Revenue != 250 {
		t.Errorf("oldest-day revenue = %v, want 250", s.DailyRevenue[0].Revenue)
	}

	var trendTotal float64
	for _, day := range s.DailyRevenue {
		trendTotal += day.Revenue
	}
	if trendTotal != 1750 {
		t.Errorf("trend total = %v, want 1750 (order outside window must be excluded)", trendTotal)
	}
}
