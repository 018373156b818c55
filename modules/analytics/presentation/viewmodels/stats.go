// Package viewmodels types the /api/analytics payloads. Field sets follow
// the backend responses; everything is read-only on this side.
package viewmodels

type Summary struct {
	Employees         int     `json:"employees"`
	ActiveEmployees   int     `json:"active_employees"`
	Customers         int     `json:"customers"`
	Rooms             int     `json:"rooms"`
	OccupiedRooms     int     `json:"occupied_rooms"`
	OccupancyRate     float64 `json:"occupancy_rate"`
	TodayRevenue      float64 `json:"today_revenue"`
	TodayPaid         float64 `json:"today_paid"`
	TotalOrders       int     `json:"total_orders"`
	TodayNewCustomers int     `json:"today_new_customers"`
}

type TrendPoint struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type DashboardSummary struct {
	Summary   Summary      `json:"summary"`
	WeekTrend []TrendPoint `json:"week_trend"`
}

type DepartmentCount struct {
	DepartmentName string `json:"department_name"`
	Count          int    `json:"count"`
}

type EmployeeStats struct {
	Total        int               `json:"total"`
	Active       int               `json:"active"`
	Terminated   int               `json:"terminated"`
	ActiveRate   float64           `json:"active_rate"`
	ByDepartment []DepartmentCount `json:"by_department"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type TopCustomer struct {
	Name       string  `json:"name"`
	OrderCount int     `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`
}

type CustomerStats struct {
	Total        int           `json:"total"`
	TodayNew     int           `json:"today_new"`
	TrendData    []DateCount   `json:"trend_data"`
	TopCustomers []TopCustomer `json:"top_customers"`
}

type StatusCount struct {
	Status   string  `json:"status"`
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avg_price"`
}

type RoomTypeCount struct {
	RoomType string  `json:"room_type"`
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avg_price"`
	AvgArea  float64 `json:"avg_area"`
}

type PriceRangeCount struct {
	PriceRange string `json:"price_range"`
	Count      int    `json:"count"`
}

type RoomStats struct {
	Total         int               `json:"total"`
	Occupied      int               `json:"occupied"`
	OccupancyRate float64           `json:"occupancy_rate"`
	StatusStats   []StatusCount     `json:"status_stats"`
	TypeStats     []RoomTypeCount   `json:"type_stats"`
	PriceStats    []PriceRangeCount `json:"price_stats"`
}

type OrderStatusCount struct {
	OrderStatus string `json:"order_status"`
	Count       int    `json:"count"`
}

type PaymentStatusCount struct {
	PaymentStatus string `json:"payment_status"`
	Count         int    `json:"count"`
}

type TodayOrderStats struct {
	TodayTotal       int     `json:"today_total"`
	TodayReserved    int     `json:"today_reserved"`
	TodayCheckedIn   int     `json:"today_checked_in"`
	TodayCompleted   int     `json:"today_completed"`
	TodayTotalAmount float64 `json:"today_total_amount"`
	TodayPaidAmount  float64 `json:"today_paid_amount"`
}

type OrderStats struct {
	Total       int                  `json:"total"`
	ByStatus    []OrderStatusCount   `json:"by_status"`
	ByPayment   []PaymentStatusCount `json:"by_payment"`
	TodayStats  TodayOrderStats      `json:"today_stats"`
	PaymentRate float64              `json:"payment_rate"`
}

type RevenueStats struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalPaid    float64 `json:"total_paid"`
	OrderCount   int     `json:"order_count"`
}

type DailyRevenue struct {
	Date         string  `json:"date"`
	DailyRevenue float64 `json:"daily_revenue"`
	DailyPaid    float64 `json:"daily_paid"`
	DailyOrders  int     `json:"daily_orders"`
}

type RoomTypeRevenue struct {
	RoomType      string  `json:"room_type"`
	Revenue       float64 `json:"revenue"`
	OrderCount    int     `json:"order_count"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

type PaymentBreakdown struct {
	PaymentStatus string  `json:"payment_status"`
	Amount        float64 `json:"amount"`
	Count         int     `json:"count"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type RevenueReport struct {
	Period        Period             `json:"period"`
	RevenueStats  RevenueStats       `json:"revenue_stats"`
	DailyTrend    []DailyRevenue     `json:"daily_trend"`
	RoomTypeStats []RoomTypeRevenue  `json:"room_type_stats"`
	PaymentStats  []PaymentBreakdown `json:"payment_stats"`
}
